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

// String is the payload for KindString: a byte buffer plus the sharing
// flags mruby strings carry (a string produced by slicing another string,
// or one wrapping memory the host owns, must not free that memory twice).
type String struct {
	Buf    []byte
	Shared bool // buffer is a view into another String's Buf
	NoFree bool // buffer is owned by the host, never by the GC
}

// MarkChildren is empty: strings hold no child references, per spec.md's
// STRING row ("none").
func (*String) MarkChildren(func(*Slot)) {}

// Free releases the buffer, respecting the shared/no-free flags, per
// spec.md's obj_free row ("free string buffer (respecting shared/no-free
// flags)").
func (s *String) Free() {
	if s.Shared || s.NoFree {
		s.Buf = nil
		return
	}
	s.Buf = nil
}
