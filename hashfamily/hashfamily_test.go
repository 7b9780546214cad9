package hashfamily

import (
	"math/rand"
	"testing"
)

func TestStringSaltEvaluateInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	h := StringSaltFamily{}.New(17, rng)
	for _, key := range []string{"jan", "feb", "march", "a"} {
		v := h.Evaluate(key)
		if v < 0 || v >= 17 {
			t.Fatalf("Evaluate(%q) = %d, want [0,17)", key, v)
		}
	}
}

func TestStringSaltDeterministic(t *testing.T) {
	h1 := StringSaltFamily{}.New(23, rand.New(rand.NewSource(42)))
	h2 := StringSaltFamily{}.New(23, rand.New(rand.NewSource(42)))
	for _, key := range []string{"alpha", "beta", "gamma"} {
		if h1.Evaluate(key) != h2.Evaluate(key) {
			t.Fatalf("same-seed HashFns diverged on %q", key)
		}
	}
}

func TestStringSaltGrowsSaltLazily(t *testing.T) {
	h := StringSaltFamily{}.New(101, rand.New(rand.NewSource(7))).(*stringSaltHash)
	h.Evaluate("ab")
	if n, ok := h.SaltLen(); !ok || n != 2 {
		t.Fatalf("expected salt length 2 after a 2-byte key, got %d (ok=%v)", n, ok)
	}
	h.Evaluate("abcdef")
	if n, ok := h.SaltLen(); !ok || n != 6 {
		t.Fatalf("expected salt length 6 after a 6-byte key, got %d (ok=%v)", n, ok)
	}
}

func TestIntVectorEvaluateInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	h := IntVectorFamily{}.New(13, rng)
	for _, key := range []string{"X", "yy", "zzz"} {
		v := h.Evaluate(key)
		if v < 0 || v >= 13 {
			t.Fatalf("Evaluate(%q) = %d, want [0,13)", key, v)
		}
	}
}

func TestFamiliesProduceIndependentSalts(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	f1 := StringSaltFamily{}.New(50, rng)
	f2 := StringSaltFamily{}.New(50, rng)
	f1.Evaluate("samekey")
	f2.Evaluate("samekey")
	s1 := f1.Salt().([]int)
	s2 := f2.Salt().([]int)
	same := true
	for i := range s1 {
		if s1[i] != s2[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("two HashFns drawn from the same rng stream produced identical salts")
	}
}

func TestTemplateFragmentsContainPlaceholders(t *testing.T) {
	for _, f := range []HashFn{
		StringSaltFamily{}.New(10, rand.New(rand.NewSource(1))),
		IntVectorFamily{}.New(10, rand.New(rand.NewSource(1))),
	} {
		frag := f.TemplateFragment()
		for _, ph := range []string{"$S1", "$S2", "$NG"} {
			if !contains(frag, ph) {
				t.Errorf("fragment missing placeholder %s:\n%s", ph, frag)
			}
		}
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
