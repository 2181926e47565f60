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
	"math"

	"github.com/emberlang/gc/gcerr"
	"github.com/emberlang/gc/rval"
)

// Realloc is the single reallocation primitive every other allocator entry
// point routes through, implementing spec.md §4.A's contract:
//
//   - if the host allocator returns nil and newSize > 0 and the heap is
//     initialized, run a full collection and retry exactly once;
//   - if the retry also returns nil and newSize > 0, set (or, if already
//     set, treat as fatal) the out-of-memory flag and raise an OOMError;
//   - on success, clear the out-of-memory flag.
func (rt *Runtime) Realloc(buf []byte, newSize int) ([]byte, error) {
	next := rt.Config.Allocator(buf, newSize)
	if next == nil && newSize > 0 {
		rt.Collect()
		next = rt.Config.Allocator(buf, newSize)
	}

	if next == nil && newSize > 0 {
		if rt.OutOfMemory {
			panic(&gcerr.OOMError{Size: newSize})
		}
		rt.OutOfMemory = true
		return nil, &gcerr.OOMError{Size: newSize}
	}

	rt.OutOfMemory = false
	return next, nil
}

// Alloc allocates size bytes.
func (rt *Runtime) Alloc(size int) ([]byte, error) {
	return rt.Realloc(nil, size)
}

// Calloc allocates n*size bytes, zeroed, guarding against overflow of
// n*size per spec.md §4.A. On overflow it returns nil without allocating.
func (rt *Runtime) Calloc(n, size int) ([]byte, error) {
	if size != 0 && n > math.MaxInt/size {
		return nil, nil
	}
	buf, err := rt.Alloc(n * size)
	clear(buf)
	return buf, err
}

// Free is equivalent to reallocating buf to size 0, per spec.md §4.A.
func (rt *Runtime) Free(buf []byte) {
	_, _ = rt.Realloc(buf, 0)
}

// ObjAlloc allocates and zero-initializes a heap slot, painted white,
// protected in the arena, implementing spec.md §4.D's six steps:
//
//  1. if no page has free slots, collect, then allocate a fresh page;
//  2. pop the head of the current free page's free list;
//  3. if that page's free list is now empty, unlink it from the
//     free-pages list;
//  4. increment live, push the new slot onto the arena;
//  5. zero the slot, write kind and class, paint white;
//  6. return the slot.
func (rt *Runtime) ObjAlloc(kind rval.Kind, class *rval.Slot) (*rval.Slot, error) {
	page := rt.Heap.FreePage()
	if page == nil {
		// Collect first so reclamation has a chance to supply free slots
		// before a fresh page commits new address space (spec.md §4.D's
		// rationale for this ordering); only allocate a new page if the
		// collection didn't free any up.
		rt.Collect()
		page = rt.Heap.FreePage()
		if page == nil {
			page = rt.Heap.AllocPage()
		}
	}

	s := page.PopFree()
	wasLastFree := !page.HasFree()
	if wasLastFree {
		rt.Heap.UnlinkFreePage(page)
	}

	if err := rt.Arena.Protect(s); err != nil {
		// Undo the pop: the slot goes back on this page's free list, the
		// page goes back on the free-pages list if it had just left it,
		// and live is never incremented for a slot that never actually
		// became live. Without this, s is left off every free list while
		// still tagged KindFree, so sweep's "skip FREE slots" check would
		// skip it forever — a permanent slot leak.
		page.PushFree(s)
		if wasLastFree {
			rt.Heap.LinkFreePage(page)
		}
		return nil, err
	}

	rt.Heap.IncLive(1)
	s.Reset()
	s.Kind = kind
	s.Class = class
	s.PaintWhite()

	return s, nil
}
