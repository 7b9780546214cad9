package codegen

import (
	"fmt"
	"math/rand"

	"github.com/ilanschnell/perfect-hash/format"
	"github.com/ilanschnell/perfect-hash/generator"
	"github.com/ilanschnell/perfect-hash/hashfamily"
	"github.com/ilanschnell/perfect-hash/keymap"
	"github.com/ilanschnell/perfect-hash/logging"
)

// config holds the resolved options for a GenerateCode call.
type config struct {
	genOpts []generator.Option
	fmtOpts format.Options
	logger  logging.Logger
}

// EmitOption customizes a GenerateCode call.
type EmitOption func(*config)

// WithGeneratorOptions forwards opts to the underlying generator.Generate
// call (trial/growth tuning, an explicit RNG or seed, a logger).
func WithGeneratorOptions(opts ...generator.Option) EmitOption {
	return func(c *config) {
		c.genOpts = append(c.genOpts, opts...)
	}
}

// WithFormatOptions overrides the default formatting of parameter lists
// embedded into the template (width, indent, delimiter).
func WithFormatOptions(opts format.Options) EmitOption {
	return func(c *config) {
		c.fmtOpts = opts
	}
}

// WithLogger attaches a progress logger, forwarded to the generator.
func WithLogger(l logging.Logger) EmitOption {
	return func(c *config) {
		c.logger = logging.Fallback(l)
		c.genOpts = append(c.genOpts, generator.WithLogger(c.logger))
	}
}

func resolve(opts []EmitOption) config {
	cfg := config{fmtOpts: format.DefaultOptions(), logger: logging.NopLogger{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// GenerateCode normalizes keysOrPairs ([]string or []keymap.Pair) into a
// keymap, runs the generator to obtain (f1, f2, G), and substitutes the
// resulting parameters into template. If template is empty,
// BuiltinTemplate(family) is used instead.
func GenerateCode(keysOrPairs interface{}, family hashfamily.Family, template string, opts ...EmitOption) (string, error) {
	km, warnings, err := toKeyMap(keysOrPairs)
	if err != nil {
		return "", err
	}
	cfg := resolve(opts)
	for _, w := range warnings {
		cfg.logger.Printf("codegen: %s", w.String())
	}

	res, err := generator.Generate(km, family, cfg.genOpts...)
	if err != nil {
		return "", err
	}

	if err := checkInvariants(res); err != nil {
		return "", err
	}

	if template == "" {
		template = BuiltinTemplate(family)
	}

	values, err := buildValues(km, res, cfg.fmtOpts)
	if err != nil {
		return "", err
	}

	return substitute(template, values)
}

// toKeyMap normalizes the caller's input into a keymap.KeyMap. []string
// assigns desired hashes 0..K-1 in input order; []keymap.Pair preserves
// caller-supplied desired hashes (non-minimal perfect hashing).
func toKeyMap(keysOrPairs interface{}) (keymap.KeyMap, []keymap.Warning, error) {
	switch v := keysOrPairs.(type) {
	case []string:
		return keymap.FromKeys(v)
	case []keymap.Pair:
		return keymap.FromPairs(v)
	case keymap.KeyMap:
		return v, nil, nil
	default:
		return keymap.KeyMap{}, nil, fmt.Errorf("codegen: unsupported input type %T, want []string or []keymap.Pair", keysOrPairs)
	}
}

// checkInvariants re-asserts the cross-checks spec §4.5 step 3 requires
// before substitution: f1 and f2 must agree on N (trivially true, since
// both came from the same successful Generate call) and on salt length.
func checkInvariants(res generator.Result) error {
	if res.F1.N() != res.F2.N() || res.F1.N() != len(res.G) {
		return ErrInconsistentHashFns
	}
	len1, ok1 := res.F1.SaltLen()
	len2, ok2 := res.F2.SaltLen()
	if ok1 != ok2 || (ok1 && len1 != len2) {
		return ErrInconsistentHashFns
	}
	return nil
}

// buildValues renders every named placeholder from spec §4.5 step 5 into
// its substituted text.
func buildValues(km keymap.KeyMap, res generator.Result, fmtOpts format.Options) (map[string]string, error) {
	f := format.New(fmtOpts)

	keys := make([]string, km.Len())
	hashes := make([]int, km.Len())
	for i, p := range km.Pairs() {
		keys[i] = p.Key
		hashes[i] = p.Hash
	}

	values := map[string]string{
		"G":  f.Format(res.G, false),
		"NG": fmt.Sprintf("%d", len(res.G)),
		"S1": f.Format(res.F1.Salt(), false),
		"S2": f.Format(res.F2.Salt(), false),
		"K":  f.Format(keys, true),
		"H":  f.Format(hashes, false),
		"NK": fmt.Sprintf("%d", km.Len()),
	}

	n1, ok1 := res.F1.SaltLen()
	if ok1 {
		values["NS"] = fmt.Sprintf("%d", n1)
	} else {
		values["NS"] = "None"
	}

	return values, nil
}

// BuiltinTemplate composes the default template for family: a fixed
// prelude defining the vertex-value table, the family's own template
// fragment (its evaluator and salt literals), and a sanity-check
// postlude that re-evaluates every key and asserts it matches its
// desired hash, per spec §4.5 step 4.
func BuiltinTemplate(family hashfamily.Family) string {
	fragment := family.New(1, rand.New(rand.NewSource(0))).TemplateFragment()
	return builtinPrelude + fragment + builtinPostlude
}

const builtinPrelude = `# automatically generated by perfect-hash, do not edit
# $NK keys, table of size $NG

G = [$G]

`

const builtinPostlude = `

def _selfcheck():
    K = [$K]
    H = [$H]
    for _k, _h in zip(K, H):
        assert perfect_hash(_k) == _h, (_k, _h)

_selfcheck()
`
