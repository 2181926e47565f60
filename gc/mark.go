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

package gc

import "github.com/emberlang/gc/rval"

// mark enumerates the root set, in the order spec.md §4.E prescribes, and
// traces from each root.
func (rt *Runtime) mark() {
	rt.State = StateMark

	rt.Globals.MarkChildren(rt.markValue)
	rt.Arena.Each(rt.markValue)
	rt.markValue(rt.ObjectClass)
	rt.markValue(rt.TopSelf)
	rt.markValue(rt.Exc)
	if rt.RootContext != nil {
		rt.RootContext.MarkChildren(rt.markValue)
	}
	for _, irep := range rt.IReps {
		if irep == nil {
			continue
		}
		for _, c := range irep.Pool {
			rt.markValue(c)
		}
	}
}

// markValue traces p: paint it black and recurse into its children,
// dispatching on Kind with a dense switch rather than a per-kind vtable,
// per spec.md §9's explicit guidance.
//
// The "already black" check on entry is what makes cyclic object graphs
// safe: classes pointing at superclasses, fibers holding contexts that
// hold frames that hold procs that hold environments that may point back,
// all terminate the first time traversal returns to an already-marked
// node.
func (rt *Runtime) markValue(p *rval.Slot) {
	if p == nil || !p.IsWhite() {
		return
	}
	p.PaintBlack()

	if p.Class != nil {
		rt.markValue(p.Class)
	}

	// Dispatch children by Kind, matching spec.md §4.E's per-kind table
	// exactly. This is a dense switch rather than an interface vtable
	// lookup, per spec.md §9 — the Kind tag already tells us exactly
	// which concrete payload type is present, so there is no need to let
	// Go's dynamic dispatch pick the method.
	switch p.Kind {
	case rval.KindFree, rval.KindFalse, rval.KindTrue, rval.KindFixnum,
		rval.KindSymbol, rval.KindString:
		// No children.
	case rval.KindFloat:
		// No children (boxed only under word-boxing; see rval.Float).
	case rval.KindIClass:
		if c, ok := p.Payload.(*rval.IClass); ok {
			c.MarkChildren(rt.markValue)
		}
	case rval.KindClass, rval.KindModule, rval.KindSClass:
		if c, ok := p.Payload.(*rval.Class); ok {
			c.MarkChildren(rt.markValue)
		}
	case rval.KindObject:
		if o, ok := p.Payload.(*rval.Object); ok {
			o.MarkChildren(rt.markValue)
		}
	case rval.KindData:
		if d, ok := p.Payload.(*rval.Data); ok {
			d.MarkChildren(rt.markValue)
		}
	case rval.KindProc:
		if pr, ok := p.Payload.(*rval.Proc); ok {
			pr.MarkChildren(rt.markValue)
		}
	case rval.KindEnv:
		if e, ok := p.Payload.(*rval.Env); ok {
			e.MarkChildren(rt.markValue)
		}
	case rval.KindFiber:
		if f, ok := p.Payload.(*rval.Fiber); ok {
			f.MarkChildren(rt.markValue)
		}
	case rval.KindArray:
		if a, ok := p.Payload.(*rval.Array); ok {
			a.MarkChildren(rt.markValue)
		}
	case rval.KindHash:
		if h, ok := p.Payload.(*rval.Hash); ok {
			h.MarkChildren(rt.markValue)
		}
	case rval.KindRange:
		if r, ok := p.Payload.(*rval.Range); ok {
			r.MarkChildren(rt.markValue)
		}
	}
}
