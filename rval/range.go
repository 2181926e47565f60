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

// Range is the payload for KindRange. Edges are only heap-allocated when
// they hold a non-immediate endpoint (e.g. a Range over Strings); a Range
// over two Fixnums never allocates them, matching mruby's mrb_range_edges
// being lazily allocated.
type Range struct {
	Beg, End    *Slot
	Excl        bool
	EdgesAlloc  bool
}

// MarkChildren marks the endpoints if they were allocated, per spec.md's
// RANGE row ("if edges are allocated, the beg and end endpoints").
func (r *Range) MarkChildren(mark func(*Slot)) {
	if !r.EdgesAlloc {
		return
	}
	if r.Beg != nil {
		mark(r.Beg)
	}
	if r.End != nil {
		mark(r.End)
	}
}

// Free releases the edges record.
func (r *Range) Free() {
	r.Beg, r.End = nil, nil
	r.EdgesAlloc = false
}
