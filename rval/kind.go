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

// Package rval defines the tagged value representation shared by the heap
// and the collector: the kind enum, the per-kind payload types, and the
// Traceable/Finalizable interfaces the mark and sweep phases dispatch
// through.
package rval

// Kind tags a Slot with the shape of its payload.
//
// Immediate kinds (False, True, Fixnum, Symbol, and Float when the host is
// built without word-boxing) are encoded inline in values and never occupy a
// heap slot; they appear here only so the mark switch can name them.
type Kind uint8

const (
	KindFree Kind = iota
	KindFalse
	KindTrue
	KindFixnum
	KindSymbol
	KindFloat
	KindObject
	KindClass
	KindModule
	KindIClass
	KindSClass
	KindString
	KindArray
	KindHash
	KindRange
	KindData
	KindProc
	KindEnv
	KindFiber
)

// Immediate reports whether values of this kind are encoded inline and never
// occupy a heap slot or the arena.
func (k Kind) Immediate() bool {
	switch k {
	case KindFalse, KindTrue, KindFixnum, KindSymbol, KindFloat:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	switch k {
	case KindFree:
		return "FREE"
	case KindFalse:
		return "FALSE"
	case KindTrue:
		return "TRUE"
	case KindFixnum:
		return "FIXNUM"
	case KindSymbol:
		return "SYMBOL"
	case KindFloat:
		return "FLOAT"
	case KindObject:
		return "OBJECT"
	case KindClass:
		return "CLASS"
	case KindModule:
		return "MODULE"
	case KindIClass:
		return "ICLASS"
	case KindSClass:
		return "SCLASS"
	case KindString:
		return "STRING"
	case KindArray:
		return "ARRAY"
	case KindHash:
		return "HASH"
	case KindRange:
		return "RANGE"
	case KindData:
		return "DATA"
	case KindProc:
		return "PROC"
	case KindEnv:
		return "ENV"
	case KindFiber:
		return "FIBER"
	default:
		return "UNKNOWN"
	}
}
