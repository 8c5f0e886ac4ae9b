package core

import (
	"testing"

	"github.com/washimkgp/JPW-File-Validator-New-V1/internal/rules"
)

func TestContentKey_DistinguishesInputs(t *testing.T) {
	a := ContentKey([]byte("workbook-a"))
	b := ContentKey([]byte("workbook-b"))

	if a == "" || b == "" {
		t.Fatal("ContentKey() returned empty digest")
	}
	if a == b {
		t.Errorf("distinct inputs hashed to the same key %q", a)
	}
	if again := ContentKey([]byte("workbook-a")); again != a {
		t.Errorf("ContentKey() not stable: %q vs %q", a, again)
	}
}

func TestResultCache_PutGet(t *testing.T) {
	cache := newResultCache(4)

	records := []rules.ErrorRecord{{Sheet: "Lead", RowIndex: 2, ErrorType: "Duplicate MobileNumber"}}
	cache.put("k1", records)

	got, ok := cache.get("k1")
	if !ok {
		t.Fatal("get() miss for stored key")
	}
	if len(got) != 1 || got[0].ErrorType != "Duplicate MobileNumber" {
		t.Errorf("get() = %v", got)
	}

	if _, ok := cache.get("absent"); ok {
		t.Error("get() hit for absent key")
	}
}

func TestResultCache_EmptyRecordsAreAHit(t *testing.T) {
	cache := newResultCache(4)
	cache.put("clean", []rules.ErrorRecord{})

	got, ok := cache.get("clean")
	if !ok {
		t.Fatal("clean result not cached")
	}
	if got == nil || len(got) != 0 {
		t.Errorf("get() = %v, want empty non-nil slice", got)
	}
}

func TestResultCache_EvictsOldestFirst(t *testing.T) {
	cache := newResultCache(2)

	cache.put("k1", nil)
	cache.put("k2", nil)
	cache.put("k3", nil)

	if _, ok := cache.get("k1"); ok {
		t.Error("oldest entry survived eviction")
	}
	if _, ok := cache.get("k2"); !ok {
		t.Error("k2 evicted prematurely")
	}
	if _, ok := cache.get("k3"); !ok {
		t.Error("newest entry missing")
	}
	if got := cache.len(); got != 2 {
		t.Errorf("len() = %d, want 2", got)
	}
}

func TestResultCache_PutIsIdempotent(t *testing.T) {
	cache := newResultCache(2)

	cache.put("k1", []rules.ErrorRecord{{ErrorType: "first"}})
	cache.put("k1", []rules.ErrorRecord{{ErrorType: "second"}})

	got, _ := cache.get("k1")
	if len(got) != 1 || got[0].ErrorType != "first" {
		t.Errorf("repeat put() replaced entry: %v", got)
	}
	if cache.len() != 1 {
		t.Errorf("len() = %d, want 1", cache.len())
	}
}
