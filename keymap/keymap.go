package keymap

import "fmt"

// Pair is one (key, desired hash) association.
type Pair struct {
	Key  string
	Hash int
}

// Warning describes a non-fatal anomaly found during intake (spec: a
// duplicate key or duplicate desired hash). Construction proceeds despite
// a Warning; it is purely advisory.
type Warning struct {
	Message string
}

func (w Warning) String() string { return w.Message }

// KeyMap is an ordered, duplicate-free mapping from key to desired hash.
// Order is insertion order of the first occurrence of each key; the value
// is whichever occurrence of that key came last, matching ordinary map
// assignment semantics.
type KeyMap struct {
	pairs []Pair
}

// Pairs returns the (key, hash) pairs in stable order.
func (m KeyMap) Pairs() []Pair {
	return m.pairs
}

// Len returns the number of distinct keys.
func (m KeyMap) Len() int {
	return len(m.pairs)
}

// MaxHash returns the largest desired hash in the map, or -1 if the map
// is empty.
func (m KeyMap) MaxHash() int {
	max := -1
	for _, p := range m.pairs {
		if p.Hash > max {
			max = p.Hash
		}
	}
	return max
}

// FromKeys builds a KeyMap assigning desired hashes 0..K-1 in input
// order — "minimal perfect" mode.
func FromKeys(keys []string) (KeyMap, []Warning, error) {
	pairs := make([]Pair, len(keys))
	for i, k := range keys {
		pairs[i] = Pair{Key: k, Hash: i}
	}
	return FromPairs(pairs)
}

// FromPairs builds a KeyMap from caller-supplied (key, hash) pairs,
// preserving the caller's desired hashes as given.
func FromPairs(pairs []Pair) (KeyMap, []Warning, error) {
	var warnings []Warning

	order := make([]string, 0, len(pairs))
	seen := make(map[string]bool, len(pairs))
	values := make(map[string]int, len(pairs))

	for _, p := range pairs {
		if seen[p.Key] {
			warnings = append(warnings, Warning{
				Message: fmt.Sprintf("duplicate key %q: hash %d overwrites %d", p.Key, p.Hash, values[p.Key]),
			})
		} else {
			seen[p.Key] = true
			order = append(order, p.Key)
		}
		values[p.Key] = p.Hash
	}

	hashCounts := make(map[int]int, len(order))
	for _, k := range order {
		hashCounts[values[k]]++
	}
	warnedHash := make(map[int]bool, len(order))
	for _, k := range order {
		h := values[k]
		if hashCounts[h] > 1 && !warnedHash[h] {
			warnings = append(warnings, Warning{
				Message: fmt.Sprintf("duplicate desired hash %d shared by multiple keys", h),
			})
			warnedHash[h] = true
		}
	}

	out := make([]Pair, len(order))
	for i, k := range order {
		out[i] = Pair{Key: k, Hash: values[k]}
	}
	return KeyMap{pairs: out}, warnings, nil
}
