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

// SharedBuffer is a refcounted element buffer shared by array slices that
// were produced by a shallow copy-on-write split, e.g. Array#[]=
// range-assignment in the host language. Mirrors mruby's mrb_shared_array.
type SharedBuffer struct {
	Elems    []*Slot
	refcount int
}

// Incref bumps the sharer count.
func (b *SharedBuffer) Incref() { b.refcount++ }

// Decref drops the sharer count, per spec.md's ary_decref hook. Returns
// true if the buffer just became unshared (refcount reached zero), in
// which case the caller is free to let it go.
func (b *SharedBuffer) Decref() bool {
	b.refcount--
	return b.refcount <= 0
}

// Array is the payload for KindArray.
//
// When Shared is non-nil, Elems aliases Shared.Elems and this array does
// not own the buffer; sweep must call Shared.Decref instead of discarding
// Elems directly, per spec.md's obj_free table ("if shared, decrement the
// shared buffer's refcount; else free the element buffer").
type Array struct {
	Elems  []*Slot
	Shared *SharedBuffer
}

// MarkChildren marks every element, per spec.md's ARRAY row ("every
// element").
func (a *Array) MarkChildren(mark func(*Slot)) {
	for _, e := range a.Elems {
		if e != nil {
			mark(e)
		}
	}
}

// Free releases the element buffer, respecting the shared/owned split.
func (a *Array) Free() {
	if a.Shared != nil {
		a.Shared.Decref()
		a.Shared = nil
	}
	a.Elems = nil
}
