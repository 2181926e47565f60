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

// Traceable is implemented by every non-immediate payload type so the mark
// phase's per-kind switch has a uniform call after it has already decided,
// from Slot.Kind, which concrete type Payload holds. The switch itself
// still dispatches on Kind rather than a type assertion to an interface
// value picked at random, per spec.md §9's "avoid a virtual method per
// kind" guidance — Traceable exists to document and type-check the
// contract each payload satisfies, not to be the dispatch mechanism.
type Traceable interface {
	MarkChildren(mark func(*Slot))
}

// Finalizable is implemented by every payload type with a sweep-time
// cleanup action, mirroring spec.md §4.F's per-kind obj_free table.
type Finalizable interface {
	Free()
}

var (
	_ Traceable = (*Object)(nil)
	_ Traceable = (*Data)(nil)
	_ Traceable = (*Class)(nil)
	_ Traceable = (*IClass)(nil)
	_ Traceable = (*Array)(nil)
	_ Traceable = (*Hash)(nil)
	_ Traceable = (*String)(nil)
	_ Traceable = (*Range)(nil)
	_ Traceable = (*Proc)(nil)
	_ Traceable = (*Env)(nil)
	_ Traceable = (*Fiber)(nil)
	_ Traceable = (*Float)(nil)

	_ Finalizable = (*Object)(nil)
	_ Finalizable = (*Data)(nil)
	_ Finalizable = (*Class)(nil)
	_ Finalizable = (*IClass)(nil)
	_ Finalizable = (*Array)(nil)
	_ Finalizable = (*Hash)(nil)
	_ Finalizable = (*String)(nil)
	_ Finalizable = (*Range)(nil)
	_ Finalizable = (*Proc)(nil)
	_ Finalizable = (*Env)(nil)
	_ Finalizable = (*Fiber)(nil)
	_ Finalizable = (*Float)(nil)
)
