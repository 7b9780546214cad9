package generator

import "errors"

// ErrTooManyIterations is returned when the retry loop exceeds its hard
// trial cap without finding an acyclic graph. This commonly means the
// hash family isn't sufficiently randomized for the given key set, or
// that the key set contains a small number of keys that collide under
// every (f1, f2) pair the family can produce.
var ErrTooManyIterations = errors.New("generator: exceeded trial cap without finding an acyclic graph")
