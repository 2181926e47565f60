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

// Package langsurface is the thin GC.* surface a host interpreter's
// builtin table calls into, per spec.md §6's "language-level surface".
// Every function here does nothing beyond delegate to a *gc.Runtime, or
// return a placeholder constant for the three ratio/mode knobs this
// collector doesn't implement.
package langsurface

import "github.com/emberlang/gc/gc"

// Start triggers a full collection unless the runtime has been disabled,
// GC.start.
func Start(rt *gc.Runtime) {
	rt.Collect()
}

// Enable re-enables the collector, returning whether it was previously
// disabled, GC.enable.
func Enable(rt *gc.Runtime) bool {
	return rt.Enable()
}

// Disable turns the collector off, returning whether it was already
// disabled, GC.disable.
func Disable(rt *gc.Runtime) bool {
	return rt.Disable()
}

// IntervalRatio is GC.interval_ratio: accepted but not honored by this
// stop-the-world collector. Always true, per spec.md §6.
func IntervalRatio(*gc.Runtime) bool {
	return true
}

// SetIntervalRatio is GC.interval_ratio=. The value is accepted and
// discarded.
func SetIntervalRatio(*gc.Runtime, int) bool {
	return true
}

// StepRatio is GC.step_ratio: a placeholder for a future incremental
// variant, per spec.md §6 and StepSize in package gc.
func StepRatio(*gc.Runtime) bool {
	return true
}

// SetStepRatio is GC.step_ratio=. The value is accepted and discarded.
func SetStepRatio(*gc.Runtime, int) bool {
	return true
}

// GenerationalMode is GC.generational_mode: a placeholder for a future
// generational variant, per spec.md §1's Non-goals and §6.
func GenerationalMode(*gc.Runtime) bool {
	return true
}

// SetGenerationalMode is GC.generational_mode=. The value is accepted and
// discarded.
func SetGenerationalMode(*gc.Runtime, bool) bool {
	return true
}
