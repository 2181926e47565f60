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

// Env is the payload for KindEnv: a closure's captured local variables.
//
// While a closure's defining call frame is still on some fiber's execution
// stack, Values aliases that stack and CIOff records which call frame it
// aliases (CIOff >= 0); those values are reached through the owning
// fiber's context scan, not through this Env, to avoid marking them twice.
// Once the frame returns, the interpreter copies the values out onto the
// heap and sets CIOff to -1 ("top-level" in spec.md's vocabulary), at which
// point this Env becomes the sole owner and must mark them itself.
type Env struct {
	Values []*Slot
	CIOff  int
}

// MarkChildren marks every captured value, but only once this Env owns its
// storage outright, per spec.md's ENV row: "if top-level (cioff < 0), every
// value in its value array, length given by the flags word."
func (e *Env) MarkChildren(mark func(*Slot)) {
	if e.CIOff >= 0 {
		return
	}
	for _, v := range e.Values {
		if v != nil {
			mark(v)
		}
	}
}

// Free releases the captured value array once this Env owns it (CIOff < 0);
// an Env still aliasing a call frame keeps Values untouched.
func (e *Env) Free() {
	if e.CIOff < 0 {
		e.Values = nil
	}
}
