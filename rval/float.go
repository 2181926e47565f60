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

// Float is the payload for KindFloat under word-boxing, where a float does
// not fit in an immediate value and must be boxed on the heap. Builds that
// encode floats inline never allocate this payload; see spec.md §3.
type Float struct {
	Val float64
}

// MarkChildren is empty: a boxed float holds no child references.
func (*Float) MarkChildren(func(*Slot)) {}

// Free is a no-op in the pointer-boxing variant; under word-boxing there is
// still no payload to release beyond the slot itself, per spec.md's
// obj_free row ("no-op in the pointer-boxing variant; deallocate payload
// under word-boxing" — the "payload" there is the boxed float cell, which
// this Go port represents inline in the struct rather than a separate
// allocation, so there is nothing further to release).
func (*Float) Free() {}
