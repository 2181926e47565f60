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

import (
	"github.com/google/uuid"

	"github.com/emberlang/gc/heap"
	"github.com/emberlang/gc/internal/gcstats"
	"github.com/emberlang/gc/rval"
)

// State is the collector's current phase, part of spec.md §3's runtime
// state.
type State int

const (
	StateNone State = iota
	StateMark
	StateSweep
)

// IRep is a compiled instruction sequence's constant pool, the last root
// spec.md §4.E enumerates: "for each live entry, each constant in its
// pool." The bytecode itself is outside the collector's scope (spec.md
// §1); only the pool of runtime values it references is a root source.
type IRep struct {
	Pool []*rval.Slot
}

// Runtime is the process-wide GC state spec.md §3 and §9 describe: created
// at InitHeap time, torn down at FreeHeap, never referencing anything
// outside itself. Embedding multiple runtimes in different threads is
// permitted only if each has its own Runtime, per spec.md §5 — nothing
// here is synchronized internally.
type Runtime struct {
	// ID identifies this runtime in heap dumps (Dump's RuntimeID), so
	// dumps from several runtimes in one process stay distinguishable.
	ID uuid.UUID

	Heap  *heap.Heap
	Arena *ProtectionStack

	// Globals is the global variables table, root #1 in spec.md §4.E.
	Globals rval.SymbolTable
	// ObjectClass is the root of the class hierarchy, root #3.
	ObjectClass *rval.Slot
	// TopSelf is the top-level receiver, root #4.
	TopSelf *rval.Slot
	// Exc is the current exception, if any, root #5.
	Exc *rval.Slot
	// RootContext is the root execution context, root #6.
	RootContext *rval.Context
	// IReps is every live compiled instruction sequence, root #7.
	IReps []*IRep

	State        State
	Disabled     bool
	OutOfMemory  bool
	liveAfterMark int

	Config Config

	stats runtimeStats
}

type runtimeStats struct {
	Collections  gcstats.Counter
	ObjectsSwept gcstats.Counter
	BytesSwept   gcstats.Counter
	PauseNS      gcstats.Mean
}

// New builds a Runtime and initializes its heap, per spec.md's
// init_heap: establishes empty lists and allocates the first page.
func New(opts ...Option) *Runtime {
	cfg := NewConfig(opts...)
	rt := &Runtime{
		ID:      uuid.New(),
		Heap:    heap.NewHeap(cfg.PageSize),
		Arena:   NewProtectionStack(cfg.ArenaSize),
		Globals: make(rval.SymbolTable),
		Config:  cfg,
	}
	rt.Heap.InitHeap()
	return rt
}

// FreeHeap tears the runtime's heap down, per spec.md's free_heap.
func (rt *Runtime) FreeHeap() {
	rt.Heap.FreeHeap()
}

// Stats returns a point-in-time snapshot of the collector's running
// counters, the GC statistics accessors SPEC_FULL.md §12 adds beyond the
// distilled spec.
func (rt *Runtime) Stats() gcstats.Snapshot {
	return gcstats.Snapshot{
		Collections:  rt.stats.Collections.Get(),
		ObjectsSwept: rt.stats.ObjectsSwept.Get(),
		BytesSwept:   rt.stats.BytesSwept.Get(),
		LivePages:    int64(rt.Heap.PageCount()),
		MeanPauseNS:  rt.stats.PauseNS.Get(),
	}
}
