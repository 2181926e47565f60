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

//go:build !debug

package gcdebug

// Enabled is false in release builds.
const Enabled = false

// Log is a no-op in release builds.
func Log(operation, format string, args ...any) {}

// Assert is a no-op in release builds: invariant violations are
// programmer bugs, and spec.md §7 explicitly does not ask release builds
// to tolerate or detect internal corruption.
func Assert(cond bool, format string, args ...any) {}
