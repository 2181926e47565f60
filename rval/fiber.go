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

// FiberState tracks a fiber's lifecycle, used only to decide whether its
// saved context is still resumable during mark_context's walk up c.prev.
type FiberState int

const (
	FiberCreated FiberState = iota
	FiberRunning
	FiberResumed
	FiberSuspended
	FiberTerminated
)

// CallInfo is one frame of a saved execution context: the environment,
// proc, and target class active in that frame, plus how many registers of
// the value stack it claims.
type CallInfo struct {
	Env         *Slot
	Proc        *Slot
	TargetClass *Slot
	NRegs       int
}

// Context is a saved (or live) execution context: the value stack, the
// call-info frame stack, and the ensure-block stack, mirroring mruby's
// mrb_context. Both the root execution context and every FIBER's saved
// context share this shape.
type Context struct {
	Stack     []*Slot
	StBase    int
	StEnd     int
	CallInfos []CallInfo
	CIIdx     int
	Ensure    []*Slot
	EIdx      int

	// Prev is the context that resumed into this one, if any. Its owning
	// fiber is marked only if still resumable, per spec.md's
	// mark_context description.
	Prev *Slot
}

// MarkChildren performs the four traversals spec.md's mark_context
// prescribes, in order: the live portion of the value stack, the live
// portion of the ensure stack, every call-info frame up to and including
// the current one, and the previous fiber if still resumable.
func (c *Context) MarkChildren(mark func(*Slot)) {
	if len(c.CallInfos) > 0 && c.CIIdx < len(c.CallInfos) {
		ci := c.CallInfos[c.CIIdx]
		end := c.StBase + ci.NRegs
		if end > c.StEnd {
			end = c.StEnd
		}
		if end > len(c.Stack) {
			end = len(c.Stack)
		}
		for i := c.StBase; i < end; i++ {
			if c.Stack[i] != nil {
				mark(c.Stack[i])
			}
		}
	}

	for i := 0; i < c.EIdx && i < len(c.Ensure); i++ {
		if c.Ensure[i] != nil {
			mark(c.Ensure[i])
		}
	}

	for i := 0; i <= c.CIIdx && i < len(c.CallInfos); i++ {
		ci := c.CallInfos[i]
		if ci.Env != nil {
			mark(ci.Env)
		}
		if ci.Proc != nil {
			mark(ci.Proc)
		}
		if ci.TargetClass != nil {
			mark(ci.TargetClass)
		}
	}

	if c.Prev != nil {
		if fib, ok := c.Prev.Payload.(*Fiber); ok && fib.State != FiberTerminated {
			mark(c.Prev)
		}
	}
}

// Fiber is the payload for KindFiber: a suspended or resumable execution
// context plus its lifecycle state.
type Fiber struct {
	Ctx   *Context
	State FiberState
}

// MarkChildren marks the saved execution context, per spec.md's FIBER row
// ("its saved execution context (via mark_context)").
func (f *Fiber) MarkChildren(mark func(*Slot)) {
	if f.Ctx != nil {
		f.Ctx.MarkChildren(mark)
	}
}

// Free releases the embedded execution context, per spec.md's obj_free row.
func (f *Fiber) Free() {
	f.Ctx = nil
}
