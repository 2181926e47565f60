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

// Package heap owns the paged object heap: fixed-size pages of rval.Slot,
// the global page list, and the free-pages list (pages with at least one
// free slot). It implements spec.md §4.B in full.
package heap

import "github.com/emberlang/gc/rval"

// DefaultPageSize is PAGE_SIZE from spec.md §6: the number of slots per
// page absent an explicit gc.Config override.
const DefaultPageSize = 1024

// Page is a fixed-size array of slots plus the bookkeeping spec.md §3
// describes: a per-page free list, links in the global page list, links in
// the free-pages list, and a flag reserved for a future generational
// variant.
type Page struct {
	Slots    []rval.Slot
	FreeList *rval.Slot

	next, prev         *Page
	freeNext, freePrev *Page

	// Reserved is unused by this collector; carried only so a future
	// generational variant has somewhere to record a page's generation
	// without changing Page's shape, per spec.md §3.
	Reserved bool
}

// NewPage allocates one zeroed page of n slots and threads every slot onto
// its free list.
//
// Slots are scanned forward (index 0 upward) and each is prepended to the
// list being built, so the slot scanned first (index 0) ends up at the
// tail and the slot scanned last (index n-1) ends up at the head — exactly
// the order spec.md §4.B prescribes for page_new.
func NewPage(n int) *Page {
	p := &Page{Slots: make([]rval.Slot, n)}

	var head *rval.Slot
	for i := 0; i < n; i++ {
		s := &p.Slots[i]
		s.Reset()
		s.SetFreeNext(head)
		head = s
	}
	p.FreeList = head

	return p
}

// HasFree reports whether this page has at least one slot on its free
// list, the condition under which it belongs to the heap's free-pages
// list (spec.md invariant 3).
func (p *Page) HasFree() bool { return p.FreeList != nil }

// PopFree pops the head of the page's free list. The caller must check
// HasFree first; PopFree on an empty free list returns nil.
func (p *Page) PopFree() *rval.Slot {
	s := p.FreeList
	if s == nil {
		return nil
	}
	p.FreeList = s.AsFreeNext()
	return s
}

// PushFree prepends s to the page's free list. s must belong to this page
// and must already be tagged rval.KindFree.
func (p *Page) PushFree(s *rval.Slot) {
	s.SetFreeNext(p.FreeList)
	p.FreeList = s
}
