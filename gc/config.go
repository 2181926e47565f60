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

// Package gc is the collector core: the allocator wrapper, the mark and
// sweep phases, the arena protection stack, and the external entry points
// described in spec.md §§4 and 6.
package gc

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emberlang/gc/heap"
)

// StepSize is STEP_SIZE from spec.md §6: reserved for an incremental
// variant, unused by this stop-the-world collector.
const StepSize = 1024

// AllocatorFunc is the host-supplied allocation primitive every other
// allocator entry point routes through. Given the current contents (nil
// for a fresh allocation) and a desired new size, it returns a buffer of
// exactly newSize bytes preserving the overlap with buf, or nil if the
// host allocator is out of memory. newSize == 0 requests a free.
type AllocatorFunc func(buf []byte, newSize int) []byte

func defaultAllocator(buf []byte, newSize int) []byte {
	if newSize == 0 {
		return nil
	}
	next := make([]byte, newSize)
	copy(next, buf)
	return next
}

// Config holds every tunable the collector exposes. Construct it with
// NewConfig and a set of Options, following the teacher's top-level
// options.go functional-option idiom (CompileOption there, Option here).
type Config struct {
	// PageSize is PAGE_SIZE: slots per page. Default heap.DefaultPageSize.
	PageSize int
	// ArenaSize is ARENA_SIZE, bounded by the host runtime.
	ArenaSize int
	// Allocator is the host allocation primitive Realloc (and so Alloc,
	// Calloc and Free) routes through. ObjAlloc does not use it: heap
	// slots come from heap pages.
	Allocator AllocatorFunc
}

// Option configures a Config, mirroring the teacher's
// `type CompileOption struct{ apply func(*compiler.Options) }`.
type Option struct{ apply func(*Config) }

// WithPageSize overrides PAGE_SIZE.
func WithPageSize(n int) Option {
	return Option{func(c *Config) { c.PageSize = n }}
}

// WithArenaSize overrides ARENA_SIZE.
func WithArenaSize(n int) Option {
	return Option{func(c *Config) { c.ArenaSize = n }}
}

// WithAllocator overrides the host allocation primitive.
func WithAllocator(fn AllocatorFunc) Option {
	return Option{func(c *Config) { c.Allocator = fn }}
}

// NewConfig builds a Config from its defaults and the given options.
func NewConfig(opts ...Option) Config {
	c := Config{
		PageSize:  heap.DefaultPageSize,
		ArenaSize: 100,
		Allocator: defaultAllocator,
	}
	for _, o := range opts {
		o.apply(&c)
	}
	return c
}

// fileConfig is the subset of Config that can round-trip through YAML; the
// Allocator field is a function and is never serialized.
type fileConfig struct {
	PageSize  int `yaml:"page_size"`
	ArenaSize int `yaml:"arena_size"`
}

// LoadConfigFile reads PageSize/ArenaSize overrides from a YAML file the
// host embedder can ship alongside the ember runtime binary, applied on
// top of the given base options.
func LoadConfigFile(path string, opts ...Option) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, err
	}

	all := opts
	if fc.PageSize > 0 {
		all = append(all, WithPageSize(fc.PageSize))
	}
	if fc.ArenaSize > 0 {
		all = append(all, WithArenaSize(fc.ArenaSize))
	}
	return NewConfig(all...), nil
}
