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

// Package gcpb encodes a heap snapshot as a small wire-format message that
// a host can write to disk and cmd/gcdump can read back, for offline inspection of a
// process whose runtime has already exited. The encoding is hand-rolled
// against google.golang.org/protobuf's protowire package rather than a
// generated .pb.go, the same low-level tag/varint approach the teacher's own
// parser uses in reverse (its parse.go decodes wire-format messages with
// protowire.ConsumeFieldValue; this package encodes and decodes one with the
// same primitives).
package gcpb

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

const (
	fieldRuntimeID   protowire.Number = 1
	fieldPageSize    protowire.Number = 2
	fieldLive        protowire.Number = 3
	fieldPages       protowire.Number = 4
	fieldKindCounts  protowire.Number = 5
)

const (
	pageFieldOccupied protowire.Number = 1
	pageFieldFree     protowire.Number = 2
)

const (
	kindCountFieldKind  protowire.Number = 1
	kindCountFieldCount protowire.Number = 2
)

// PageSummary is one page's occupancy at dump time.
type PageSummary struct {
	Occupied uint32
	Free     uint32
}

// KindCount is the number of live slots of one rval.Kind at dump time. The
// kind is carried as its underlying uint8 tag rather than importing rval,
// keeping this package's only dependency the wire format itself.
type KindCount struct {
	Kind  uint32
	Count uint64
}

// HeapDump is a full heap snapshot: one runtime's identity, its
// configuration, and a per-page and per-kind breakdown.
type HeapDump struct {
	RuntimeID  string
	PageSize   uint32
	Live       uint64
	Pages      []PageSummary
	KindCounts []KindCount
}

// Marshal encodes d as a protobuf wire-format message.
func (d *HeapDump) Marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldRuntimeID, protowire.BytesType)
	b = protowire.AppendString(b, d.RuntimeID)
	b = protowire.AppendTag(b, fieldPageSize, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(d.PageSize))
	b = protowire.AppendTag(b, fieldLive, protowire.VarintType)
	b = protowire.AppendVarint(b, d.Live)

	for _, p := range d.Pages {
		b = protowire.AppendTag(b, fieldPages, protowire.BytesType)
		b = protowire.AppendBytes(b, marshalPage(p))
	}
	for _, kc := range d.KindCounts {
		b = protowire.AppendTag(b, fieldKindCounts, protowire.BytesType)
		b = protowire.AppendBytes(b, marshalKindCount(kc))
	}
	return b
}

func marshalPage(p PageSummary) []byte {
	var b []byte
	b = protowire.AppendTag(b, pageFieldOccupied, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(p.Occupied))
	b = protowire.AppendTag(b, pageFieldFree, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(p.Free))
	return b
}

func marshalKindCount(kc KindCount) []byte {
	var b []byte
	b = protowire.AppendTag(b, kindCountFieldKind, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(kc.Kind))
	b = protowire.AppendTag(b, kindCountFieldCount, protowire.VarintType)
	b = protowire.AppendVarint(b, kc.Count)
	return b
}

// Unmarshal decodes b into a fresh HeapDump.
func Unmarshal(b []byte) (*HeapDump, error) {
	d := &HeapDump{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("gcpb: malformed tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch num {
		case fieldRuntimeID:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, fmt.Errorf("gcpb: malformed runtime_id: %w", protowire.ParseError(n))
			}
			d.RuntimeID = v
			b = b[n:]
		case fieldPageSize:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("gcpb: malformed page_size: %w", protowire.ParseError(n))
			}
			d.PageSize = uint32(v)
			b = b[n:]
		case fieldLive:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("gcpb: malformed live: %w", protowire.ParseError(n))
			}
			d.Live = v
			b = b[n:]
		case fieldPages:
			msg, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("gcpb: malformed page: %w", protowire.ParseError(n))
			}
			p, err := unmarshalPage(msg)
			if err != nil {
				return nil, err
			}
			d.Pages = append(d.Pages, p)
			b = b[n:]
		case fieldKindCounts:
			msg, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("gcpb: malformed kind_count: %w", protowire.ParseError(n))
			}
			kc, err := unmarshalKindCount(msg)
			if err != nil {
				return nil, err
			}
			d.KindCounts = append(d.KindCounts, kc)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("gcpb: malformed unknown field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return d, nil
}

func unmarshalPage(b []byte) (PageSummary, error) {
	var p PageSummary
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return p, fmt.Errorf("gcpb: malformed page tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch num {
		case pageFieldOccupied:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return p, fmt.Errorf("gcpb: malformed occupied: %w", protowire.ParseError(n))
			}
			p.Occupied = uint32(v)
			b = b[n:]
		case pageFieldFree:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return p, fmt.Errorf("gcpb: malformed free: %w", protowire.ParseError(n))
			}
			p.Free = uint32(v)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return p, fmt.Errorf("gcpb: malformed unknown page field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return p, nil
}

func unmarshalKindCount(b []byte) (KindCount, error) {
	var kc KindCount
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return kc, fmt.Errorf("gcpb: malformed kind_count tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch num {
		case kindCountFieldKind:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return kc, fmt.Errorf("gcpb: malformed kind: %w", protowire.ParseError(n))
			}
			kc.Kind = uint32(v)
			b = b[n:]
		case kindCountFieldCount:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return kc, fmt.Errorf("gcpb: malformed count: %w", protowire.ParseError(n))
			}
			kc.Count = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return kc, fmt.Errorf("gcpb: malformed unknown kind_count field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return kc, nil
}

// Snapshot builds a HeapDump from a live runtime's heap and stats. It takes
// the pieces it needs as plain values rather than importing package gc, to
// avoid a dependency cycle (gc will import gcpb from its dump helper).
func Snapshot(runtimeID string, pageSize uint32, live uint64, pages []PageSummary, kindCounts []KindCount) *HeapDump {
	return &HeapDump{
		RuntimeID:  runtimeID,
		PageSize:   pageSize,
		Live:       live,
		Pages:      pages,
		KindCounts: kindCounts,
	}
}
