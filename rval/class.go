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

// Class is the payload shared by KindClass, KindModule, and KindSClass: a
// method table, an instance-variable table (for class-level ivars), and a
// superclass link. The three kinds differ only in how the interpreter's
// method-resolution order treats them; the collector traces all three
// identically, per spec.md §4.E's mark table.
type Class struct {
	MT    SymbolTable
	IV    SymbolTable
	Super *Slot
}

// MarkChildren marks the method table, the instance variables, and the
// superclass, in that order, matching the CLASS/MODULE/SCLASS row of
// spec.md's mark table.
func (c *Class) MarkChildren(mark func(*Slot)) {
	c.MT.MarkChildren(mark)
	c.IV.MarkChildren(mark)
	if c.Super != nil {
		mark(c.Super)
	}
}

// Free releases the method and instance-variable tables.
func (c *Class) Free() {
	c.MT = nil
	c.IV = nil
}

// IClass is the payload for KindIClass: an "included module" proxy in the
// superclass chain, with only a superclass link to trace.
type IClass struct {
	Super *Slot
}

// MarkChildren marks only the superclass, per spec.md's ICLASS row.
func (c *IClass) MarkChildren(mark func(*Slot)) {
	if c.Super != nil {
		mark(c.Super)
	}
}

// Free is a no-op: an IClass owns no tables of its own.
func (c *IClass) Free() {}
