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

// Package gcstats provides instrumentation counter primitives for the
// collector, ported from the teacher's internal/stats package. Recording a
// collection's pause time and objects reclaimed is observability, not a
// scheduling decision, so it does not conflict with spec.md's "no precise
// pause-time bounds" non-goal.
package gcstats

import "sync/atomic"

// Mean tracks an average statistic. The zero value is ready to use.
// Concurrent writes are safe; calling Get concurrently with Record may
// observe a torn read, same caveat the teacher's Mean documents.
type Mean struct {
	total   atomic.Uint64 // bits of a float64, via math.Float64bits
	samples atomic.Uint64
}

// Record records one sample.
func (m *Mean) Record(sample float64) {
	addFloat(&m.total, sample)
	m.samples.Add(1)
}

// Get returns the mean of every sample recorded so far, or 0 if none have.
func (m *Mean) Get() float64 {
	samples := m.samples.Load()
	if samples == 0 {
		return 0
	}
	return loadFloat(&m.total) / float64(samples)
}

// Counter is a simple integer counter, used for collection counts and
// objects swept.
type Counter struct {
	n atomic.Int64
}

// Add increments the counter by delta (which may be negative).
func (c *Counter) Add(delta int64) { c.n.Add(delta) }

// Get returns the current value.
func (c *Counter) Get() int64 { return c.n.Load() }

// Snapshot is a point-in-time read of every statistic the collector
// tracks, returned by Runtime.Stats(). The collector never adds to
// BytesSwept, so it reads zero.
type Snapshot struct {
	Collections   int64
	ObjectsSwept  int64
	BytesSwept    int64
	LivePages     int64
	MeanPauseNS   float64
}
