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

// Hash is the payload for KindHash.
type Hash struct {
	IV    SymbolTable
	Table *HashTable
}

// NewHash returns an empty Hash payload.
func NewHash() *Hash {
	return &Hash{Table: NewHashTable()}
}

// MarkChildren marks instance variables and every key/value pair, per
// spec.md's HASH row ("instance variables and every key/value pair").
func (h *Hash) MarkChildren(mark func(*Slot)) {
	h.IV.MarkChildren(mark)
	for _, e := range h.Table.All() {
		if e.Key != nil {
			mark(e.Key)
		}
		if e.Val != nil {
			mark(e.Val)
		}
	}
}

// Free releases instance variables and the hash table, per spec.md's
// obj_free row ("free instance variables and the hash table").
func (h *Hash) Free() {
	h.IV = nil
	h.Table = nil
}
