package gc

import (
	"errors"
	"testing"

	"github.com/emberlang/gc/gcerr"
	"github.com/emberlang/gc/rval"
)

func TestProtectionStackProtectAndEach(t *testing.T) {
	a := NewProtectionStack(4)
	s1, s2 := &rval.Slot{Kind: rval.KindFixnum}, &rval.Slot{Kind: rval.KindString}

	if err := a.Protect(s1); err != nil {
		t.Fatalf("Protect: %v", err)
	}
	if err := a.Protect(s2); err != nil {
		t.Fatalf("Protect: %v", err)
	}
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}

	var seen []*rval.Slot
	a.Each(func(s *rval.Slot) { seen = append(seen, s) })
	if len(seen) != 2 || seen[0] != s1 || seen[1] != s2 {
		t.Fatalf("Each visited %v in the wrong order", seen)
	}
}

func TestProtectionStackProtectNilIsNoOp(t *testing.T) {
	a := NewProtectionStack(4)
	if err := a.Protect(nil); err != nil {
		t.Fatalf("Protect(nil) = %v, want nil error", err)
	}
	if a.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", a.Len())
	}
}

func TestProtectionStackSaveRestore(t *testing.T) {
	a := NewProtectionStack(4)
	idx := a.Save()
	a.Protect(&rval.Slot{})
	a.Protect(&rval.Slot{})
	a.Restore(idx)

	if a.Len() != idx {
		t.Fatalf("Len() = %d after Restore, want %d", a.Len(), idx)
	}
}

func TestProtectionStackWithCheckpointRestoresOnError(t *testing.T) {
	a := NewProtectionStack(4)
	boom := errors.New("boom")

	err := a.WithCheckpoint(func() error {
		a.Protect(&rval.Slot{})
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if a.Len() != 0 {
		t.Fatalf("Len() = %d after checkpoint rollback, want 0", a.Len())
	}
}

func TestProtectionStackOverflowReturnsArenaOverflowError(t *testing.T) {
	a := NewProtectionStack(4)
	var lastErr error
	for i := 0; i < 5; i++ {
		lastErr = a.Protect(&rval.Slot{})
	}

	var overflow *gcerr.ArenaOverflowError
	if !errors.As(lastErr, &overflow) {
		t.Fatalf("err = %v, want *gcerr.ArenaOverflowError", lastErr)
	}
	if a.Len() >= 4 {
		t.Fatalf("Len() = %d after overflow, expected headroom reserved", a.Len())
	}
}

func TestProtectionStackProtectValueSkipsImmediates(t *testing.T) {
	a := NewProtectionStack(4)
	if err := a.ProtectValue(rval.KindFixnum, &rval.Slot{}); err != nil {
		t.Fatalf("ProtectValue(immediate): %v", err)
	}
	if a.Len() != 0 {
		t.Fatal("immediate kinds should never be protected")
	}

	if err := a.ProtectValue(rval.KindObject, &rval.Slot{}); err != nil {
		t.Fatalf("ProtectValue(heap kind): %v", err)
	}
	if a.Len() != 1 {
		t.Fatal("a non-immediate kind should be protected")
	}
}
