package keymap

import (
	"testing"
)

func TestFromKeysAssignsImplicitHashes(t *testing.T) {
	km, warnings, err := FromKeys([]string{"jan", "feb", "mar"})
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	want := []Pair{{"jan", 0}, {"feb", 1}, {"mar", 2}}
	got := km.Pairs()
	if len(got) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
	if km.MaxHash() != 2 {
		t.Errorf("MaxHash() = %d, want 2", km.MaxHash())
	}
}

func TestFromPairsAllowsEmptyKey(t *testing.T) {
	// Key is an opaque hashable value (spec §3); intake imposes no
	// restriction on its shape beyond uniqueness, matching
	// original_source/perfect_hash.py's keyDict, which never rejects "".
	km, _, err := FromPairs([]Pair{{"", 7}})
	if err != nil {
		t.Fatal(err)
	}
	if km.Len() != 1 || km.Pairs()[0] != (Pair{"", 7}) {
		t.Fatalf("got %+v, want a single {\"\", 7} pair", km.Pairs())
	}
}

func TestFromPairsWarnsOnDuplicateKeyAndKeepsLastHash(t *testing.T) {
	km, warnings, err := FromPairs([]Pair{{"a", 0}, {"b", 1}, {"a", 2}})
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(warnings), warnings)
	}
	if km.Len() != 2 {
		t.Fatalf("expected deduplicated length 2, got %d", km.Len())
	}
	for _, p := range km.Pairs() {
		if p.Key == "a" && p.Hash != 2 {
			t.Errorf("expected last occurrence's hash (2) to win, got %d", p.Hash)
		}
	}
}

func TestFromPairsWarnsOnDuplicateHash(t *testing.T) {
	_, warnings, err := FromPairs([]Pair{{"a", 5}, {"b", 5}})
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(warnings), warnings)
	}
}

func TestFromPairsAllowsHashesBeyondKMinus1(t *testing.T) {
	km, _, err := FromPairs([]Pair{{"a", 100}})
	if err != nil {
		t.Fatal(err)
	}
	if km.MaxHash() != 100 {
		t.Errorf("MaxHash() = %d, want 100", km.MaxHash())
	}
}
