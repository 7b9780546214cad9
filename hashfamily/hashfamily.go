package hashfamily

import "math/rand"

// HashFn is a single, independently-salted member of a hash family: a
// pure function (given its salt) from a string key to a value in
// [0, N()).
type HashFn interface {
	// N reports the codomain size this HashFn was constructed with.
	N() int

	// Evaluate returns a value in [0, N()) for key. It may grow the
	// underlying salt as a side effect when key is longer than any key
	// seen before, drawing the new salt bytes from the RNG it was
	// constructed with.
	Evaluate(key string) int

	// Salt returns the current salt value. Its concrete type depends on
	// the family; both built-in families return a []int (byte values for
	// StringSaltFamily, integers in [0, N) for IntVectorFamily).
	Salt() interface{}

	// SaltLen returns the current length of the salt and true, or
	// (0, false) for a family whose salt is a single scalar with no
	// meaningful length.
	SaltLen() (int, bool)

	// TemplateFragment returns the template text fragment that, once
	// substituted, reproduces Evaluate in emitted code.
	TemplateFragment() string
}

// Family constructs fresh HashFn instances for a given codomain size.
// Two HashFn values obtained from successive New calls with the same rng
// must draw independent salts.
type Family interface {
	New(n int, rng *rand.Rand) HashFn
}

// alphanumeric is the alphabet salt bytes are drawn from.
const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func randomAlphanumericByte(rng *rand.Rand) byte {
	return alphanumeric[rng.Intn(len(alphanumeric))]
}

// mod returns x mod n, always in [0, n).
func mod(x, n int) int {
	r := x % n
	if r < 0 {
		r += n
	}
	return r
}
