package gcdebug

import (
	"fmt"
	"testing"
)

func TestDictFormatsKeyValuePairsSkippingNil(t *testing.T) {
	got := fmt.Sprintf("%v", Dict("page", "size", 1024, "live", nil, "full", false))
	want := "page{size: 1024, full: false}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDictNilPrefixDefaultsToEmptyString(t *testing.T) {
	got := fmt.Sprintf("%v", Dict(nil, "k", "v"))
	want := "{k: v}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatterRejectsNonVVerb(t *testing.T) {
	f := Dict("x")
	got := fmt.Sprintf("%d", f)
	if got != "%d(gcdebug.Formatter)" {
		t.Fatalf("got %q, want the verb-mismatch fallback", got)
	}
}

func TestDictOddArgsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Dict with an odd kv count to panic")
		}
	}()
	_ = fmt.Sprintf("%v", Dict("x", "k"))
}
