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
	"time"

	"github.com/emberlang/gc/internal/gcdebug"
	"github.com/emberlang/gc/rval"
)

// Collect runs mark then sweep straight through, the single stop-the-world
// pass spec.md §4.F and §8 describe: no incremental steps, no generational
// tracking. If the collector is disabled it returns immediately without
// tracing anything, per spec.md's boundary behavior for gc_disabled.
func (rt *Runtime) Collect() {
	if rt.Disabled {
		gcdebug.Log("collect", "disabled, skipping")
		return
	}

	start := time.Now()

	rt.mark()
	rt.prepareSweep()
	rt.sweep()
	rt.State = StateNone

	rt.stats.Collections.Add(1)
	rt.stats.PauseNS.Record(float64(time.Since(start).Nanoseconds()))

	gcdebug.Log("collect", "pass complete, live=%d", rt.Heap.Live())
}

// Enable turns the collector back on and reports whether it was previously
// disabled, per spec.md §6's mgc_enable.
func (rt *Runtime) Enable() (wasDisabled bool) {
	wasDisabled = rt.Disabled
	rt.Disabled = false
	return wasDisabled
}

// Disable turns the collector off and reports whether it was already
// disabled, per spec.md §6's mgc_disable. While disabled, Collect is a
// no-op and allocation falls straight through to AllocPage when the
// free-pages list is empty.
func (rt *Runtime) Disable() (wasDisabled bool) {
	wasDisabled = rt.Disabled
	rt.Disabled = true
	return wasDisabled
}

// EachObject invokes fn for every live, non-FREE slot in the heap, stopping
// early if fn returns false. When kinds is non-empty, only slots whose Kind
// appears in it are visited — the kind-filtered variant SPEC_FULL.md §12
// adds beyond spec.md's unfiltered each_object.
func (rt *Runtime) EachObject(fn func(*rval.Slot) bool, kinds ...rval.Kind) {
	var allowed map[rval.Kind]bool
	if len(kinds) > 0 {
		allowed = make(map[rval.Kind]bool, len(kinds))
		for _, k := range kinds {
			allowed[k] = true
		}
	}

	stop := false
	rt.Heap.EachSlot(func(s *rval.Slot) {
		if stop || s.Kind == rval.KindFree {
			return
		}
		if allowed != nil && !allowed[s.Kind] {
			return
		}
		if !fn(s) {
			stop = true
		}
	})
}

// WriteBarrier is a deliberate no-op: the collector is non-incremental and
// non-generational (spec.md §1's Non-goals), so no write ever needs to
// retrigger tracing. It exists so call sites can be written as if a barrier
// were always present, matching the shape spec.md's mruby source has at
// every field write, without paying for one.
func (rt *Runtime) WriteBarrier(parent, child *rval.Slot) {}
