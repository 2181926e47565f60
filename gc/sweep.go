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
	"github.com/emberlang/gc/heap"
	"github.com/emberlang/gc/internal/gcdebug"
	"github.com/emberlang/gc/rval"
)

// prepareSweep sets the sweep cursor to the head of the global page list
// and records live as live_after_mark, per spec.md §4.F.
func (rt *Runtime) prepareSweep() {
	rt.Heap.SetSweepCursor(rt.Heap.FirstPage())
	rt.liveAfterMark = rt.Heap.Live()
}

// sweep walks pages from the cursor, finalizing unreachable slots,
// rebuilding free lists, and reclaiming fully-dead pages, per spec.md
// §4.F.
func (rt *Runtime) sweep() {
	rt.State = StateSweep

	for p := rt.Heap.SweepCursor(); p != nil; {
		next := rt.Heap.NextPage(p)
		rt.sweepPage(p)
		p = next
	}
}

func (rt *Runtime) sweepPage(p *heap.Page) {
	enteredFull := !p.HasFree()
	allDead := true
	anyOccupied := false
	freed := 0

	for i := range p.Slots {
		s := &p.Slots[i]
		if s.Kind == rval.KindFree {
			continue
		}
		anyOccupied = true
		if s.IsWhite() || s.IsDead() {
			rt.finalize(s)
			p.PushFree(s)
			freed++
			continue
		}
		s.PaintWhite()
		allDead = false
	}

	switch {
	case allDead && anyOccupied && freed < len(p.Slots):
		// Every occupied slot died, and at least one slot was already free
		// when the page entered sweep. A page that entered entirely free
		// (anyOccupied false) is never released here, per spec.md §4.F's
		// defensive case, and a page that entered entirely full and died
		// in full (freed == len(p.Slots)) is kept and relinked rather than
		// released. Releasing the only page leaves the heap with zero
		// pages; ObjAlloc allocates a fresh one on demand.
		rt.Heap.UnlinkPage(p)
		if rt.Heap.IsFreePageListed(p) {
			rt.Heap.UnlinkFreePage(p)
		}
		gcdebug.Log("sweep", "released fully-dead page")
	case enteredFull && freed > 0:
		rt.Heap.LinkFreePage(p)
	}

	rt.Heap.DecLive(freed)
	rt.liveAfterMark -= freed
	rt.stats.ObjectsSwept.Add(int64(freed))
}

// finalize runs the per-kind free hook for s, per spec.md §4.F's obj_free
// table, then tags the slot FREE. The slot's position on the free list is
// set by the caller, sweepPage.
func (rt *Runtime) finalize(s *rval.Slot) {
	switch s.Kind {
	case rval.KindTrue, rval.KindFixnum, rval.KindSymbol:
		// Illegal: these are immediate kinds and should never occupy a
		// heap slot. Return without action rather than corrupt anything.
		gcdebug.Assert(false, "immediate kind %v found on heap", s.Kind)
		return
	case rval.KindFree:
		return
	}

	if f, ok := s.Payload.(rval.Finalizable); ok {
		f.Free()
	}

	s.Reset()
}
