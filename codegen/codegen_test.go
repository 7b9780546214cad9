package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ilanschnell/perfect-hash/generator"
	"github.com/ilanschnell/perfect-hash/hashfamily"
)

func TestSubstituteBasic(t *testing.T) {
	got, err := substitute("G = [$G], N = $NG", map[string]string{"G": "1, 2, 3", "NG": "3"})
	if err != nil {
		t.Fatal(err)
	}
	want := "G = [1, 2, 3], N = 3"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSubstituteEscapesDoubleDollar(t *testing.T) {
	got, err := substitute("cost: $$5, rate: $NG%", map[string]string{"NG": "10"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "cost: $5, rate: 10%" {
		t.Errorf("got %q", got)
	}
}

func TestSubstituteUnknownPlaceholder(t *testing.T) {
	_, err := substitute("$BOGUS", map[string]string{"G": "1"})
	require.ErrorIs(t, err, ErrUnknownPlaceholder)
}

func TestSubstituteDanglingDollar(t *testing.T) {
	_, err := substitute("total: $", nil)
	require.ErrorIs(t, err, ErrDanglingDollar)
}

func TestGenerateCodeFromKeys(t *testing.T) {
	keys := []string{"jan", "feb", "mar", "apr", "may", "jun",
		"jul", "aug", "sep", "oct", "nov", "dec"}
	code, err := GenerateCode(keys, hashfamily.IntVectorFamily{}, "",
		WithGeneratorOptions(generator.WithSeed(1)))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(code, "def perfect_hash(key)") {
		t.Errorf("emitted code missing perfect_hash definition:\n%s", code)
	}
	if !strings.Contains(code, "_selfcheck()") {
		t.Errorf("emitted code missing sanity-check postlude:\n%s", code)
	}
	if strings.Contains(code, "$") {
		t.Errorf("emitted code has unsubstituted placeholder:\n%s", code)
	}
}

func TestGenerateCodeCustomTemplate(t *testing.T) {
	code, err := GenerateCode([]string{"Ilan", "Arvin"}, hashfamily.StringSaltFamily{},
		"N=$NG NK=$NK K=[$K] H=[$H]",
		WithGeneratorOptions(generator.WithSeed(5)))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(code, "NK=2") {
		t.Errorf("expected NK=2 in %q", code)
	}
	if !strings.Contains(code, `"Ilan"`) || !strings.Contains(code, `"Arvin"`) {
		t.Errorf("expected quoted keys in %q", code)
	}
}

func TestGenerateCodeEmptyKeySet(t *testing.T) {
	code, err := GenerateCode([]string{}, hashfamily.StringSaltFamily{}, "NK=$NK")
	if err != nil {
		t.Fatal(err)
	}
	if code != "NK=0" {
		t.Errorf("got %q, want %q", code, "NK=0")
	}
}

func TestGenerateCodeUnsupportedInput(t *testing.T) {
	_, err := GenerateCode(42, hashfamily.StringSaltFamily{}, "")
	if err == nil {
		t.Fatal("expected an error for an unsupported input type")
	}
}

func TestBuiltinTemplateBothFamilies(t *testing.T) {
	for _, family := range []hashfamily.Family{hashfamily.StringSaltFamily{}, hashfamily.IntVectorFamily{}} {
		tmpl := BuiltinTemplate(family)
		for _, placeholder := range []string{"$G", "$NG", "$S1", "$S2", "$K", "$H"} {
			if !strings.Contains(tmpl, placeholder) {
				t.Errorf("builtin template for %T missing %s", family, placeholder)
			}
		}
	}
}
