package rval

import "testing"

// collectMarks runs MarkChildren and returns the slots it visited, in order.
func collectMarks(t Traceable) []*Slot {
	var out []*Slot
	t.MarkChildren(func(s *Slot) { out = append(out, s) })
	return out
}

func TestClassMarkChildrenOrder(t *testing.T) {
	method := &Slot{Kind: KindProc}
	ivar := &Slot{Kind: KindFixnum}
	super := &Slot{Kind: KindClass}
	c := &Class{
		MT:    SymbolTable{1: method},
		IV:    SymbolTable{2: ivar},
		Super: super,
	}

	got := collectMarks(c)
	if len(got) != 3 {
		t.Fatalf("got %d marks, want 3", len(got))
	}
	if got[2] != super {
		t.Fatalf("super should be marked last, got %v", got)
	}
}

func TestIClassMarksOnlySuper(t *testing.T) {
	super := &Slot{Kind: KindClass}
	ic := &IClass{Super: super}
	got := collectMarks(ic)
	if len(got) != 1 || got[0] != super {
		t.Fatalf("IClass should mark only its superclass, got %v", got)
	}
}

func TestArrayMarksEveryElement(t *testing.T) {
	a := &Array{Elems: []*Slot{{Kind: KindFixnum}, nil, {Kind: KindString}}}
	got := collectMarks(a)
	if len(got) != 2 {
		t.Fatalf("got %d marks, want 2 (nil elements skipped)", len(got))
	}
}

func TestArrayFreeDecrefsSharedBuffer(t *testing.T) {
	buf := &SharedBuffer{Elems: []*Slot{{}}}
	buf.Incref()
	buf.Incref()
	a := &Array{Shared: buf}
	a.Free()
	if buf.refcount != 1 {
		t.Fatalf("refcount = %d, want 1 after one Free", buf.refcount)
	}
	if a.Shared != nil {
		t.Fatal("Free should drop the Shared reference")
	}
}

func TestRangeMarksEdgesOnlyWhenAllocated(t *testing.T) {
	beg, end := &Slot{Kind: KindString}, &Slot{Kind: KindString}
	r := &Range{Beg: beg, End: end, EdgesAlloc: false}
	if got := collectMarks(r); len(got) != 0 {
		t.Fatalf("unallocated edges should not be marked, got %v", got)
	}

	r.EdgesAlloc = true
	if got := collectMarks(r); len(got) != 2 {
		t.Fatalf("allocated edges should both be marked, got %v", got)
	}
}

func TestEnvMarksOnlyWhenTopLevel(t *testing.T) {
	v := &Slot{Kind: KindFixnum}
	e := &Env{Values: []*Slot{v}, CIOff: 0}
	if got := collectMarks(e); len(got) != 0 {
		t.Fatalf("env aliasing a live call frame should not be marked directly, got %v", got)
	}

	e.CIOff = -1
	if got := collectMarks(e); len(got) != 1 || got[0] != v {
		t.Fatalf("top-level env should mark its captured values, got %v", got)
	}
}

func TestContextMarkChildrenOrder(t *testing.T) {
	stackVal := &Slot{Kind: KindFixnum}
	ensureVal := &Slot{Kind: KindProc}
	ciEnv := &Slot{Kind: KindEnv}

	c := &Context{
		Stack:     []*Slot{stackVal, {Kind: KindString}},
		StBase:    0,
		StEnd:     2,
		CallInfos: []CallInfo{{Env: ciEnv, NRegs: 1}},
		CIIdx:     0,
		Ensure:    []*Slot{ensureVal},
		EIdx:      1,
	}

	got := collectMarks(c)
	if len(got) != 3 {
		t.Fatalf("got %d marks, want 3 (1 stack reg + 1 ensure + 1 call-info env)", len(got))
	}
	if got[0] != stackVal {
		t.Fatalf("expected stack register marked first, got %v", got)
	}
}

func TestContextSkipsTerminatedPrevFiber(t *testing.T) {
	prevFiberSlot := &Slot{Kind: KindFiber, Payload: &Fiber{State: FiberTerminated}}
	c := &Context{Prev: prevFiberSlot}
	if got := collectMarks(c); len(got) != 0 {
		t.Fatalf("a terminated previous fiber should not be marked, got %v", got)
	}

	prevFiberSlot.Payload = &Fiber{State: FiberSuspended}
	if got := collectMarks(c); len(got) != 1 {
		t.Fatalf("a resumable previous fiber should be marked, got %v", got)
	}
}

func TestHashMarksKeysAndValues(t *testing.T) {
	h := NewHash()
	k, v := &Slot{Kind: KindString}, &Slot{Kind: KindFixnum}
	h.Table.Insert(42, Entry{Key: k, Val: v})

	got := collectMarks(h)
	if len(got) != 2 {
		t.Fatalf("got %d marks, want 2 (key + value)", len(got))
	}
}

func TestDataFreeInvokesHookThenClearsIV(t *testing.T) {
	called := false
	var gotPtr any
	d := &Data{
		IV:  SymbolTable{1: &Slot{}},
		Type: &DataType{Name: "handle", Free: func(ptr any) { called = true; gotPtr = ptr }},
		Ptr: "resource",
	}
	d.Free()

	if !called {
		t.Fatal("expected the user-supplied free hook to run")
	}
	if gotPtr != "resource" {
		t.Fatalf("hook received %v, want the opaque pointer", gotPtr)
	}
	if d.IV != nil {
		t.Fatal("Free should clear instance variables")
	}
}
