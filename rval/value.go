// Copyright 2026 The Ember Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rval

// flag bits within Slot.Flags. Only the color bit and the force-dead bit are
// defined; the rest are reserved the way mruby reserves unused RVALUE flag
// bits for a future generational variant.
const (
	flagBlack      uint32 = 1 << 0
	flagForceDead  uint32 = 1 << 1
)

// Slot is one fixed-shape storage unit in a Page: either a live object
// tagged with its Kind, or a free-list entry (Kind == KindFree) whose
// freeNext field threads the page's free list through the dead slot itself,
// per spec.md's "free list in dead slots" design note.
//
// Slots never move. Their addresses are stable identities for as long as
// they are allocated; heap.Page guarantees this by never relocating the
// backing array that owns them.
type Slot struct {
	Kind    Kind
	Class   *Slot
	Flags   uint32
	Payload any

	freeNext *Slot
}

// Reset clears a slot back to its zero shape before it is either handed to
// an allocation or threaded onto a free list. Field-by-field clearing is
// sufficient; spec.md §9 notes that a static "zero RVALUE" template is not
// required for a target-language port.
func (s *Slot) Reset() {
	s.Kind = KindFree
	s.Class = nil
	s.Flags = 0
	s.Payload = nil
	s.freeNext = nil
}

// IsWhite reports whether s is unreached (a collection candidate).
func (s *Slot) IsWhite() bool { return s.Flags&flagBlack == 0 }

// PaintWhite repaints s white, done to every survivor at the end of a sweep
// pass so the next mark cycle starts from an all-white heap.
func (s *Slot) PaintWhite() { s.Flags &^= flagBlack }

// PaintBlack paints s reached. Called once per object per cycle by mark.
func (s *Slot) PaintBlack() { s.Flags |= flagBlack }

// IsDead reports whether the host has force-marked s for collection
// regardless of reachability, e.g. when tearing down a fiber mid-resume.
// Consulted by sweep alongside IsWhite, per spec.md §4.F.
func (s *Slot) IsDead() bool { return s.Flags&flagForceDead != 0 }

// MarkForceDead sets the force-dead bit consulted by IsDead.
func (s *Slot) MarkForceDead() { s.Flags |= flagForceDead }

// AsFreeNext returns the free-list successor stored in a FREE slot's
// payload. It is only valid when Kind == KindFree.
func (s *Slot) AsFreeNext() *Slot { return s.freeNext }

// SetFreeNext overlays the free-list successor pointer onto a FREE slot.
func (s *Slot) SetFreeNext(next *Slot) { s.freeNext = next }

// SymbolTable is the shared representation for both instance-variable
// tables and method tables: a mapping from a mruby-style interned symbol id
// to a child slot. Both mark_iv/mark_mt and free_iv/free_mt operate
// identically on this shape from the collector's point of view — per-kind
// behavior lives in the owning language tables, not here.
type SymbolTable map[uint32]*Slot

// MarkChildren invokes mark on every value in the table. Entries with a nil
// value (an unset ivar slot) are skipped, mirroring mruby's iv_tbl walk.
func (t SymbolTable) MarkChildren(mark func(*Slot)) {
	for _, v := range t {
		if v != nil {
			mark(v)
		}
	}
}
