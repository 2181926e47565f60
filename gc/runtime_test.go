package gc

import (
	"testing"

	"github.com/emberlang/gc/rval"
)

func TestNewInitializesHeapWithOnePage(t *testing.T) {
	rt := New(WithPageSize(4), WithArenaSize(8))
	defer rt.FreeHeap()

	if rt.Heap.PageCount() != 1 {
		t.Fatalf("PageCount() = %d, want 1", rt.Heap.PageCount())
	}
	if rt.ID.String() == "" {
		t.Fatal("expected a non-empty runtime ID")
	}
	if rt.Globals == nil {
		t.Fatal("Globals should be initialized, not nil")
	}
}

func TestStatsReflectsCollections(t *testing.T) {
	rt := New(WithPageSize(2), WithArenaSize(8))
	defer rt.FreeHeap()

	s, err := rt.ObjAlloc(rval.KindString, nil)
	if err != nil {
		t.Fatalf("ObjAlloc: %v", err)
	}
	_ = s

	before := rt.Stats()
	rt.Collect()
	after := rt.Stats()

	if after.Collections != before.Collections+1 {
		t.Fatalf("Collections = %d, want %d", after.Collections, before.Collections+1)
	}
}
