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

package gcdebug

import "fmt"

// Formatter is a fmt.Formatter implementation that just calls a function,
// ported from the teacher's internal/dbg.Formatter so Log call sites and
// cmd/gcdump can build a delayed-evaluation %v value instead of formatting
// a string up front.
type Formatter func(s fmt.State)

func (f Formatter) Format(s fmt.State, verb rune) {
	if verb != 'v' {
		fmt.Fprintf(s, "%%%c(gcdebug.Formatter)", verb)
		return
	}
	f(s)
}

func (f Formatter) String() string { return fmt.Sprint(f) }

// Dict pretty-prints the given key/value pairs as "{k: v, k: v}", skipping
// any pair whose value is nil, ported from the teacher's dbg.Dict. It panics
// when called with an odd number of kv arguments.
func Dict(prefix any, kv ...any) Formatter {
	if len(kv)%2 != 0 {
		panic("gcdebug: Dict args must be divisible by 2")
	}
	return Formatter(func(s fmt.State) {
		if prefix == nil {
			prefix = ""
		}

		first := true
		fmt.Fprintf(s, "%v{", prefix)
		for i := 0; i < len(kv)/2; i++ {
			k, v := kv[2*i], kv[2*i+1]
			if v == nil {
				continue
			}
			if !first {
				fmt.Fprint(s, ", ")
			}
			first = false
			fmt.Fprintf(s, "%v: %v", k, v)
		}
		fmt.Fprint(s, "}")
	})
}
