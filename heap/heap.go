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

package heap

import "github.com/emberlang/gc/rval"

// Heap owns every page and the two lists threaded through them: the global
// page list (every page, newest first) and the free-pages list
// (only pages with at least one free slot).
type Heap struct {
	PageSize int

	pages     *Page // head of the global page list
	freePages *Page // head of the free-pages list

	sweepCursor *Page
	index       pageIndex

	live int
}

// NewHeap constructs an empty Heap. Call InitHeap before using it.
func NewHeap(pageSize int) *Heap {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Heap{PageSize: pageSize}
}

// InitHeap establishes empty lists and allocates the first page, per
// spec.md §4.B.
func (h *Heap) InitHeap() {
	h.pages = nil
	h.freePages = nil
	h.sweepCursor = nil
	h.index = pageIndex{}
	h.live = 0
	h.allocPage()
}

// FreeHeap walks the global page list and, for each page, finalizes every
// non-FREE slot via its per-kind free routine before releasing the page.
// It does not rely on the sweep cursor or on slot color, per spec.md §4.B.
func (h *Heap) FreeHeap() {
	for p := h.pages; p != nil; {
		next := p.next
		for i := range p.Slots {
			s := &p.Slots[i]
			if s.Kind != rval.KindFree {
				if f, ok := s.Payload.(rval.Finalizable); ok {
					f.Free()
				}
			}
		}
		p = next
	}
	h.pages = nil
	h.freePages = nil
	h.sweepCursor = nil
	h.index = pageIndex{}
	h.live = 0
}

// Live returns the current live-slot count (spec.md invariant 4).
func (h *Heap) Live() int { return h.live }

// IncLive and DecLive adjust the live counter. The collector package calls
// these from obj_alloc and sweep respectively, so the invariant "live
// equals the count of non-FREE slots" is maintained by construction rather
// than recomputed.
func (h *Heap) IncLive(n int) { h.live += n }
func (h *Heap) DecLive(n int) { h.live -= n }

// FreePage returns the head of the free-pages list, or nil if every page
// is full.
func (h *Heap) FreePage() *Page { return h.freePages }

// AllocPage allocates and links a fresh page, used by obj_alloc when no
// page currently has free slots (spec.md §4.D step 1).
func (h *Heap) AllocPage() *Page { return h.allocPage() }

func (h *Heap) allocPage() *Page {
	p := NewPage(h.PageSize)
	h.linkPage(p)
	h.linkFreePage(p)
	h.index.append(p)
	return p
}

func (h *Heap) linkPage(p *Page) {
	p.prev = nil
	p.next = h.pages
	if h.pages != nil {
		h.pages.prev = p
	}
	h.pages = p
}

func (h *Heap) unlinkPage(p *Page) {
	if p.prev != nil {
		p.prev.next = p.next
	} else {
		h.pages = p.next
	}
	if p.next != nil {
		p.next.prev = p.prev
	}
	p.prev, p.next = nil, nil
	h.index.remove(p)
}

func (h *Heap) linkFreePage(p *Page) {
	p.freePrev = nil
	p.freeNext = h.freePages
	if h.freePages != nil {
		h.freePages.freePrev = p
	}
	h.freePages = p
}

func (h *Heap) unlinkFreePage(p *Page) {
	if p.freePrev != nil {
		p.freePrev.freeNext = p.freeNext
	} else {
		h.freePages = p.freeNext
	}
	if p.freeNext != nil {
		p.freeNext.freePrev = p.freePrev
	}
	p.freePrev, p.freeNext = nil, nil
}

// LinkFreePage and UnlinkFreePage are exported so the sweep phase (which
// lives in package gc, to keep tracing logic next to the root set it
// walks) can re-establish the free-pages-list invariant (spec.md invariant
// 3) as it finalizes each page.
func (h *Heap) LinkFreePage(p *Page)   { h.linkFreePage(p) }
func (h *Heap) UnlinkFreePage(p *Page) { h.unlinkFreePage(p) }

// UnlinkPage removes p from the global page list, used by sweep when a
// page is entirely dead.
func (h *Heap) UnlinkPage(p *Page) { h.unlinkPage(p) }

// IsFreePageListed reports whether p is currently linked into the
// free-pages list, used by sweep to decide whether a page it releases
// must also be unlinked from that list.
func (h *Heap) IsFreePageListed(p *Page) bool {
	return p.freeNext != nil || p.freePrev != nil || h.freePages == p
}

// FirstPage returns the head of the global page list, the sweep cursor's
// starting point.
func (h *Heap) FirstPage() *Page { return h.pages }

// NextPage returns p's successor in the global page list.
func (h *Heap) NextPage(p *Page) *Page { return p.next }

// SweepCursor and SetSweepCursor expose the current sweep position,
// per spec.md §4.F's prepare_sweep ("sets the sweep cursor to the head of
// the global page list").
func (h *Heap) SweepCursor() *Page       { return h.sweepCursor }
func (h *Heap) SetSweepCursor(p *Page)   { h.sweepCursor = p }

// EachSlot invokes fn once for every slot in every page, in page order,
// including FREE slots, per spec.md's each_object contract.
func (h *Heap) EachSlot(fn func(*rval.Slot)) {
	for p := h.pages; p != nil; p = p.next {
		for i := range p.Slots {
			fn(&p.Slots[i])
		}
	}
}

// PageCount returns the number of pages currently in the global list.
func (h *Heap) PageCount() int { return h.index.count }
