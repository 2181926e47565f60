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

// Command gcdump inspects a heap-dump file written by a host embedding
// ember's collector, printing per-page occupancy and per-kind live counts
// for offline debugging once the process that produced the dump has
// already exited.
package main

import (
	"fmt"
	"os"

	"github.com/emberlang/gc/cmd/gcdump/internal/dumpcmd"
)

func main() {
	if err := dumpcmd.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
