package gc

import (
	"testing"

	"github.com/emberlang/gc/rval"
)

func TestCollectReclaimsUnrootedValue(t *testing.T) {
	rt := New(WithPageSize(4))
	defer rt.FreeHeap()

	idx := rt.Arena.Save()
	_, _ = rt.ObjAlloc(rval.KindString, nil)
	rt.Arena.Restore(idx)

	before := rt.Heap.Live()
	rt.Collect()
	if rt.Heap.Live() != before-1 {
		t.Fatalf("Live() = %d, want %d", rt.Heap.Live(), before-1)
	}
	if rt.State != StateNone {
		t.Fatalf("State = %v after Collect, want StateNone", rt.State)
	}
}

func TestCollectIsNoOpWhenDisabled(t *testing.T) {
	rt := New(WithPageSize(4))
	defer rt.FreeHeap()

	idx := rt.Arena.Save()
	_, _ = rt.ObjAlloc(rval.KindString, nil)
	rt.Arena.Restore(idx)

	rt.Disable()
	before := rt.Heap.Live()
	rt.Collect()
	if rt.Heap.Live() != before {
		t.Fatalf("Live() = %d, want %d (collect should be a no-op while disabled)", rt.Heap.Live(), before)
	}
}

func TestEnableDisableReportPreviousState(t *testing.T) {
	rt := New()
	defer rt.FreeHeap()

	if wasDisabled := rt.Disable(); wasDisabled {
		t.Fatal("a fresh runtime should not already be disabled")
	}
	if wasDisabled := rt.Disable(); !wasDisabled {
		t.Fatal("disabling an already-disabled runtime should report true")
	}
	if wasDisabled := rt.Enable(); !wasDisabled {
		t.Fatal("Enable should report the prior disabled state")
	}
	if rt.Disabled {
		t.Fatal("Enable should clear Disabled")
	}
}

func TestEachObjectFiltersByKind(t *testing.T) {
	rt := New(WithPageSize(8))
	defer rt.FreeHeap()

	rt.ObjAlloc(rval.KindString, nil)
	rt.ObjAlloc(rval.KindFixnum, nil) // legal here only as a heap tag for the filter test
	rt.ObjAlloc(rval.KindString, nil)

	count := 0
	rt.EachObject(func(*rval.Slot) bool { count++; return true }, rval.KindString)
	if count != 2 {
		t.Fatalf("EachObject with a KindString filter visited %d, want 2", count)
	}
}

func TestEachObjectStopsWhenCallbackReturnsFalse(t *testing.T) {
	rt := New(WithPageSize(8))
	defer rt.FreeHeap()

	for i := 0; i < 5; i++ {
		rt.ObjAlloc(rval.KindString, nil)
	}

	count := 0
	rt.EachObject(func(*rval.Slot) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Fatalf("EachObject visited %d objects, want exactly 2 (stop after the second)", count)
	}
}

func TestEachObjectSkipsFreeSlots(t *testing.T) {
	rt := New(WithPageSize(4))
	defer rt.FreeHeap()

	count := 0
	rt.EachObject(func(*rval.Slot) bool { count++; return true })
	if count != 0 {
		t.Fatalf("a fresh heap with no live objects should yield 0, got %d", count)
	}
}
