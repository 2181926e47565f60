package gc

import (
	"testing"

	"github.com/emberlang/gc/internal/gcpb"
	"github.com/emberlang/gc/rval"
)

func TestDumpReflectsPageAndKindOccupancy(t *testing.T) {
	rt := New(WithPageSize(4))
	defer rt.FreeHeap()

	s, err := rt.ObjAlloc(rval.KindString, nil)
	if err != nil {
		t.Fatalf("ObjAlloc: %v", err)
	}
	s.Payload = &rval.String{Buf: []byte("x")}

	d := rt.Dump()

	if d.RuntimeID != rt.ID.String() {
		t.Fatalf("RuntimeID = %q, want %q", d.RuntimeID, rt.ID.String())
	}
	if d.PageSize != 4 {
		t.Fatalf("PageSize = %d, want 4", d.PageSize)
	}
	if d.Live != uint64(rt.Heap.Live()) {
		t.Fatalf("Live = %d, want %d", d.Live, rt.Heap.Live())
	}
	if len(d.Pages) != 1 {
		t.Fatalf("len(Pages) = %d, want 1", len(d.Pages))
	}
	if d.Pages[0].Occupied != 1 || d.Pages[0].Free != 3 {
		t.Fatalf("Pages[0] = %+v, want Occupied=1 Free=3", d.Pages[0])
	}

	var found bool
	for _, kc := range d.KindCounts {
		if rval.Kind(kc.Kind) == rval.KindString {
			found = true
			if kc.Count != 1 {
				t.Fatalf("KindString count = %d, want 1", kc.Count)
			}
		}
	}
	if !found {
		t.Fatal("expected a KindCount entry for rval.KindString")
	}
}

func TestDumpRoundTripsThroughMarshal(t *testing.T) {
	rt := New(WithPageSize(4))
	defer rt.FreeHeap()

	_, err := rt.ObjAlloc(rval.KindArray, nil)
	if err != nil {
		t.Fatalf("ObjAlloc: %v", err)
	}

	got, err := gcpb.Unmarshal(rt.Dump().Marshal())
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Live != uint64(rt.Heap.Live()) {
		t.Fatalf("Live = %d, want %d", got.Live, rt.Heap.Live())
	}
}
