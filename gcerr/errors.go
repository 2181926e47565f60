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

// Package gcerr defines the two error kinds the collector core surfaces:
// out-of-memory and arena overflow. The shape — a small closed code enum,
// a table of sentinel causes, and a typed struct wrapping one with an
// Unwrap — is ported from the teacher's errParse/errCode pair in its
// top-level error.go.
package gcerr

import (
	"errors"
	"fmt"
)

const (
	codeOK code = iota
	codeOOM
	codeArenaOverflow
)

type code int

var causes = [...]error{
	codeOK:            nil,
	codeOOM:           errors.New("out of memory"),
	codeArenaOverflow: errors.New("arena overflow error"),
}

// OOMError is raised when the host allocator returns null for a
// positive-sized request even after a collection retry, per spec.md §7.
type OOMError struct {
	// Size is the request size that could not be satisfied.
	Size int
}

func (e *OOMError) Unwrap() error { return causes[codeOOM] }

func (e *OOMError) Error() string {
	return fmt.Sprintf("gc: %v (requested %d bytes)", e.Unwrap(), e.Size)
}

// ArenaOverflowError is raised when protect is called on a full arena, per
// spec.md §7. The arena index has already been truncated to ARENA_SIZE-4
// by the time this error is constructed, giving the error-raising path
// itself room to allocate.
type ArenaOverflowError struct {
	Capacity int
}

func (e *ArenaOverflowError) Unwrap() error { return causes[codeArenaOverflow] }

func (e *ArenaOverflowError) Error() string {
	return fmt.Sprintf("gc: %v (capacity %d)", e.Unwrap(), e.Capacity)
}

// IsOOM and IsArenaOverflow let callers branch on error kind without
// depending on the concrete types, using errors.As under the hood.
func IsOOM(err error) bool {
	var e *OOMError
	return errors.As(err, &e)
}

func IsArenaOverflow(err error) bool {
	var e *ArenaOverflowError
	return errors.As(err, &e)
}
