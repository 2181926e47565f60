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
	"github.com/emberlang/gc/internal/gcpb"
	"github.com/emberlang/gc/rval"
)

// Dump snapshots the runtime's heap into a gcpb.HeapDump, the format
// cmd/gcdump reads back once this process has exited. It is safe to call
// at any time; a dump mid-mark or mid-sweep simply reflects that instant.
func (rt *Runtime) Dump() *gcpb.HeapDump {
	kindCounts := make(map[rval.Kind]uint64)
	var pages []gcpb.PageSummary

	for p := rt.Heap.FirstPage(); p != nil; p = rt.Heap.NextPage(p) {
		var occupied, free uint32
		for i := range p.Slots {
			s := &p.Slots[i]
			if s.Kind == rval.KindFree {
				free++
				continue
			}
			occupied++
			kindCounts[s.Kind]++
		}
		pages = append(pages, gcpb.PageSummary{Occupied: occupied, Free: free})
	}

	counts := make([]gcpb.KindCount, 0, len(kindCounts))
	for k, n := range kindCounts {
		counts = append(counts, gcpb.KindCount{Kind: uint32(k), Count: n})
	}

	return gcpb.Snapshot(rt.ID.String(), uint32(rt.Config.PageSize), uint64(rt.Heap.Live()), pages, counts)
}
