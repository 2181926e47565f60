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

//go:build debug

// Package gcdebug includes debugging helpers for the collector: a
// caller-prefixed log line and an assertion that panics only in debug
// builds. Ported from the teacher's internal/debug package; release builds
// get the no-op counterpart in debug_off.go.
package gcdebug

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/timandy/routine"
)

// Enabled is true when the binary was built with the debug tag.
const Enabled = true

// Log prints a debug line to stderr, prefixed with the calling package,
// file, line, and goroutine id, matching the teacher's debug.Log shape.
func Log(operation, format string, args ...any) {
	skip := 1
again:
	pc, file, line, _ := runtime.Caller(skip)
	fn := runtime.FuncForPC(pc)
	name := fn.Name()
	if strings.Contains(name, ".Log") {
		skip++
		goto again
	}

	pkg := name
	if idx := strings.LastIndex(pkg, "/"); idx >= 0 {
		pkg = pkg[idx+1:]
	}
	if idx := strings.Index(pkg, "."); idx >= 0 {
		pkg = pkg[:idx]
	}

	file = filepath.Base(file)

	var buf strings.Builder
	fmt.Fprintf(&buf, "%s/%s:%d [g%d] %s: ", pkg, file, line, routine.Goid(), operation)
	fmt.Fprintf(&buf, format, args...)
	buf.WriteByte('\n')

	os.Stderr.WriteString(buf.String())
}

// Assert panics if cond is false. Only compiled into debug builds; release
// builds get the no-op in debug_off.go, so the check costs nothing there.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("gc: internal assertion failed: "+format, args...))
	}
}
