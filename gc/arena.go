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

package gc

import (
	"github.com/emberlang/gc/gcerr"
	"github.com/emberlang/gc/internal/gcdebug"
	"github.com/emberlang/gc/rval"
)

// ProtectionStack is the arena of spec.md §4.C: a bounded stack of object
// pointers that act as extra GC roots, protecting values that have been
// allocated but not yet stored into a rooted container.
//
// This is distinct from the teacher's internal/arena package, which is a
// bump allocator for pointer-free bytes (its "arena" is GC-opaque memory);
// this type is the opposite concept, a list of pointers the GC must trace.
// Both share a name by convention in their respective systems; see
// DESIGN.md for why the teacher's arena package was repurposed for
// heap.Page allocation instead of reused here.
type ProtectionStack struct {
	slots []*rval.Slot
	idx   int
}

// NewProtectionStack returns a stack with the given fixed capacity.
func NewProtectionStack(capacity int) *ProtectionStack {
	return &ProtectionStack{slots: make([]*rval.Slot, capacity)}
}

// Len returns the number of entries currently protected.
func (a *ProtectionStack) Len() int { return a.idx }

// Protect pushes ptr onto the arena. If the arena is full, the index is
// reset to capacity-4 (forcing four slots of headroom so the error path
// itself may allocate) and an ArenaOverflowError is returned, per spec.md
// §4.C and §7.
func (a *ProtectionStack) Protect(ptr *rval.Slot) error {
	if ptr == nil {
		return nil
	}
	if a.idx >= len(a.slots) {
		a.idx = len(a.slots) - 4
		if a.idx < 0 {
			a.idx = 0
		}
		gcdebug.Log("arena", "overflow, reset to %d", a.idx)
		return &gcerr.ArenaOverflowError{Capacity: len(a.slots)}
	}
	a.slots[a.idx] = ptr
	a.idx++
	return nil
}

// ProtectValue is the value-accepting form of Protect: immediate kinds
// (which never occupy a heap slot) are silently ignored, per spec.md §4.C.
func (a *ProtectionStack) ProtectValue(kind rval.Kind, ptr *rval.Slot) error {
	if kind.Immediate() {
		return nil
	}
	return a.Protect(ptr)
}

// Save returns the current index, to be passed to Restore later.
func (a *ProtectionStack) Save() int { return a.idx }

// Restore drops every protection made since the matching Save, per
// spec.md §4.C.
func (a *ProtectionStack) Restore(idx int) { a.idx = idx }

// Each invokes fn for every currently-protected pointer, in push order.
// Used by the mark phase to walk arena entries [0, idx) as part of the
// root set (spec.md §4.E root #2).
func (a *ProtectionStack) Each(fn func(*rval.Slot)) {
	for i := 0; i < a.idx; i++ {
		if a.slots[i] != nil {
			fn(a.slots[i])
		}
	}
}

// WithCheckpoint brackets fn with Save/Restore, the natural Go idiom
// (defer-based restore) for the save/restore discipline spec.md's mruby
// source expresses with the MRB_GC_ARENA_SAVE/RESTORE macro pair.
func (a *ProtectionStack) WithCheckpoint(fn func() error) error {
	idx := a.Save()
	defer a.Restore(idx)
	return fn()
}
