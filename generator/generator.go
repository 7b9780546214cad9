package generator

import (
	"fmt"
	"math"

	"github.com/ilanschnell/perfect-hash/graph"
	"github.com/ilanschnell/perfect-hash/hashfamily"
	"github.com/ilanschnell/perfect-hash/keymap"
)

// Result holds the output of a successful Generate call: the two
// auxiliary hash functions and the vertex-value table that together form
// the minimal perfect hash function
//
//	perfect_hash(key) = (G[f1(key)] + G[f2(key)]) mod len(G)
type Result struct {
	F1 hashfamily.HashFn
	F2 hashfamily.HashFn
	G  []int
}

// Generate runs the retry loop over km using the given hash family,
// returning a verified (f1, f2, G) triple, or ErrTooManyIterations if the
// hard trial cap is exceeded.
func Generate(km keymap.KeyMap, family hashfamily.Family, opts ...Option) (Result, error) {
	cfg := resolve(opts)

	n := 1
	if km.Len() > 0 {
		n = km.MaxHash() + 1
	}
	cfg.logger.Printf("generator: N = %d", n)

	trial := 0
	for {
		if trial > 0 && trial%cfg.trialsBeforeGrow == 0 {
			n = growN(n, cfg.growthFactor)
			cfg.logger.Printf("generator: %d consecutive failures, growing to N = %d", cfg.trialsBeforeGrow, n)
		}
		if trial >= cfg.hardTrialCap {
			return Result{}, ErrTooManyIterations
		}
		trial++

		result, ok, err := attempt(km, family, n, cfg)
		if err != nil {
			return Result{}, err
		}
		if ok {
			cfg.logger.Printf("generator: acyclic graph found after %d trial(s), N = %d", trial, n)
			return result, nil
		}
	}
}

// attempt builds one trial's graph and hash pair, and tries to assign
// vertex values. ok is false (with a nil error) whenever the graph was
// cyclic, which is the expected, retried-internally outcome — only a
// structural problem (which should never happen given a well-formed hash
// family) produces a non-nil error.
func attempt(km keymap.KeyMap, family hashfamily.Family, n int, cfg config) (Result, bool, error) {
	g, err := graph.New(n)
	if err != nil {
		return Result{}, false, fmt.Errorf("generator: %w", err)
	}

	f1 := family.New(n, cfg.rng)
	f2 := family.New(n, cfg.rng)

	for _, p := range km.Pairs() {
		u := f1.Evaluate(p.Key)
		v := f2.Evaluate(p.Key)
		if err := g.Connect(u, v, p.Hash); err != nil {
			return Result{}, false, fmt.Errorf("generator: internal invariant violation: %w", err)
		}
	}

	if !g.AssignVertexValues() {
		return Result{}, false, nil
	}

	values := g.VertexValues()
	if err := verify(km, f1, f2, values, n); err != nil {
		return Result{}, false, err
	}
	return Result{F1: f1, F2: f2, G: values}, true, nil
}

// verify re-evaluates every key and confirms the MPHF invariant holds,
// per spec's post-condition on a successful Generate call. A failure
// here indicates a bug in the graph or hash-family implementation, not a
// retryable condition.
func verify(km keymap.KeyMap, f1, f2 hashfamily.HashFn, values []int, n int) error {
	for _, p := range km.Pairs() {
		got := mod(values[f1.Evaluate(p.Key)]+values[f2.Evaluate(p.Key)], n)
		if got != p.Hash {
			return fmt.Errorf("generator: internal invariant violation: key %q hashes to %d, want %d", p.Key, got, p.Hash)
		}
	}
	return nil
}

// growN implements the spec's growth rule: N <- max(N+1, floor(factor*N)).
func growN(n int, factor float64) int {
	grown := int(math.Floor(factor * float64(n)))
	if n+1 > grown {
		grown = n + 1
	}
	return grown
}

func mod(x, n int) int {
	r := x % n
	if r < 0 {
		r += n
	}
	return r
}
