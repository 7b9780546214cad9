// Package keymap normalizes caller input — a plain list of keys, or a list
// of (key, desired hash) pairs — into the ordered KeyMap the generator
// package consumes.
//
// When only keys are supplied, desired hashes 0..K-1 are assigned in
// input order ("minimal perfect" mode). When pairs are supplied, the
// caller's desired hashes are kept as given, which allows non-minimal
// perfect hashing (spec open question: desired hashes may exceed K-1).
//
// Duplicate keys and duplicate desired hashes are not fatal: FromKeys and
// FromPairs keep the last value seen for a duplicate key (matching
// ordinary map assignment semantics) and return a Warning for every
// duplicate they find, instead of silently proceeding or aborting.
package keymap
