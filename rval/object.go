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

// Object is the payload for KindObject: a plain instance with an
// instance-variable table and nothing else.
type Object struct {
	IV SymbolTable
}

// MarkChildren marks every instance variable.
func (o *Object) MarkChildren(mark func(*Slot)) { o.IV.MarkChildren(mark) }

// Free releases the instance-variable table. Go's own GC reclaims the
// backing map once unreferenced; the only obligation here is to drop the
// reference promptly rather than let it dangle on a reused slot.
func (o *Object) Free() { o.IV = nil }

// DataType describes a foreign (opaque) data kind: a user-supplied free
// hook, invoked with the opaque pointer at finalization, mirroring mruby's
// mrb_data_type.
type DataType struct {
	Name string
	Free func(ptr any)
}

// Data is the payload for KindData: an opaque foreign pointer plus the
// instance-variable table every object also carries.
type Data struct {
	IV   SymbolTable
	Type *DataType
	Ptr  any
}

// MarkChildren marks the instance-variable table. The opaque Ptr is, by
// definition, not a traced value — if it needs to keep other slots alive,
// the embedder's DataType.Free/host code is responsible for that via its
// own bookkeeping, exactly as the DATA kind is documented as an external
// collaborator in spec.md's scope.
func (d *Data) MarkChildren(mark func(*Slot)) { d.IV.MarkChildren(mark) }

// Free invokes the user-supplied free hook, if any, then releases instance
// variables. Per spec.md §4.F's obj_free table: "if a user-provided free
// hook exists, call it with the opaque data pointer; then free instance
// variables."
func (d *Data) Free() {
	if d.Type != nil && d.Type.Free != nil {
		d.Type.Free(d.Ptr)
	}
	d.Ptr = nil
	d.IV = nil
}
