package rval

import "testing"

func TestSlotColorCycle(t *testing.T) {
	s := &Slot{Kind: KindObject}
	if !s.IsWhite() {
		t.Fatal("fresh slot should be white")
	}
	s.PaintBlack()
	if s.IsWhite() {
		t.Fatal("painted slot should not be white")
	}
	s.PaintWhite()
	if !s.IsWhite() {
		t.Fatal("repainted slot should be white again")
	}
}

func TestSlotForceDeadIndependentOfColor(t *testing.T) {
	s := &Slot{Kind: KindObject}
	s.PaintBlack()
	s.MarkForceDead()
	if !s.IsDead() {
		t.Fatal("expected force-dead slot to report IsDead")
	}
	if s.IsWhite() {
		t.Fatal("force-dead should not itself flip the color bit")
	}
}

func TestSlotReset(t *testing.T) {
	s := &Slot{Kind: KindString, Class: &Slot{}, Payload: &String{}}
	s.PaintBlack()
	s.SetFreeNext(&Slot{})
	s.Reset()

	if s.Kind != KindFree {
		t.Fatalf("Kind = %v, want KindFree", s.Kind)
	}
	if s.Class != nil || s.Payload != nil || s.AsFreeNext() != nil {
		t.Fatal("Reset should clear Class, Payload, and freeNext")
	}
	if !s.IsWhite() {
		t.Fatal("Reset should clear the color bit")
	}
}

func TestSymbolTableMarkChildrenSkipsNil(t *testing.T) {
	var seen []*Slot
	a := &Slot{Kind: KindObject}
	tbl := SymbolTable{1: a, 2: nil}
	tbl.MarkChildren(func(s *Slot) { seen = append(seen, s) })

	if len(seen) != 1 || seen[0] != a {
		t.Fatalf("MarkChildren visited %v, want only the non-nil entry", seen)
	}
}
