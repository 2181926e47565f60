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

// pageIndex is a power-of-two-growing index from page number to *Page,
// used by Heap.PageCount (and so Runtime.Stats) to report the page count in
// O(1) without walking the linked list.
//
// This is adapted from the teacher's internal/arena chunk-growth
// bookkeeping (a slice of blocks doubling in size as demand grows), with
// the teacher's per-size-class indexing dropped: every page here is the
// same fixed size, so there is only one size class and the slice simply
// doubles its capacity as pages are appended, same growth law, simpler
// shape.
type pageIndex struct {
	slots []*Page
	count int
}

func (pi *pageIndex) append(p *Page) {
	if pi.count == len(pi.slots) {
		pi.slots = growPageSlice(pi.slots)
	}
	pi.slots[pi.count] = p
	pi.count++
}

func (pi *pageIndex) remove(p *Page) {
	for i := 0; i < pi.count; i++ {
		if pi.slots[i] == p {
			pi.count--
			pi.slots[i] = pi.slots[pi.count]
			pi.slots[pi.count] = nil
			return
		}
	}
}

func growPageSlice(old []*Page) []*Page {
	const initialCap = 8
	n := initialCap
	if len(old) > 0 {
		n = len(old) * 2
	}
	grown := make([]*Page, n)
	copy(grown, old)
	return grown
}
