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

// Proc is the payload for KindProc: a closure over an Env plus the class
// context method resolution should use when the proc is invoked.
type Proc struct {
	Env         *Slot
	TargetClass *Slot
}

// MarkChildren marks the closed-over environment and target class, per
// spec.md's PROC row.
func (p *Proc) MarkChildren(mark func(*Slot)) {
	if p.Env != nil {
		mark(p.Env)
	}
	if p.TargetClass != nil {
		mark(p.TargetClass)
	}
}

// Free is a no-op: a Proc owns no tables of its own, only references into
// other slots that the collector traces and reclaims independently.
func (*Proc) Free() {}
