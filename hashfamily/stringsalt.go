package hashfamily

import "math/rand"

// StringSaltFamily is the "string-salt" built-in hash family: each
// HashFn's salt is a sequence of bytes (one per key-byte position),
// grown lazily to cover the longest key evaluated so far. Evaluate XORs
// each key byte against the corresponding salt byte and sums the results
// modulo N.
type StringSaltFamily struct{}

// New constructs a fresh StringSaltFamily HashFn with an empty salt.
func (StringSaltFamily) New(n int, rng *rand.Rand) HashFn {
	return &stringSaltHash{n: n, rng: rng}
}

type stringSaltHash struct {
	n    int
	rng  *rand.Rand
	salt []int // byte values, one per key-byte position
}

func (h *stringSaltHash) N() int { return h.n }

func (h *stringSaltHash) grow(l int) {
	for len(h.salt) < l {
		h.salt = append(h.salt, int(randomAlphanumericByte(h.rng)))
	}
}

func (h *stringSaltHash) Evaluate(key string) int {
	h.grow(len(key))
	sum := 0
	for i := 0; i < len(key); i++ {
		sum += h.salt[i] ^ int(key[i])
	}
	return mod(sum, h.n)
}

func (h *stringSaltHash) Salt() interface{} {
	return append([]int(nil), h.salt...)
}

func (h *stringSaltHash) SaltLen() (int, bool) {
	return len(h.salt), true
}

func (h *stringSaltHash) TemplateFragment() string {
	return stringSaltTemplateFragment
}

const stringSaltTemplateFragment = `def _xorsum_hash(key, salt):
    s = 0
    for i, c in enumerate(str(key).encode('utf-8')):
        s += salt[i] ^ c
    return s % $NG

S1 = [$S1]
S2 = [$S2]

def perfect_hash(key):
    return (G[_xorsum_hash(key, S1)] + G[_xorsum_hash(key, S2)]) % $NG
`
