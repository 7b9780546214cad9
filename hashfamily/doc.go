// Package hashfamily defines the pluggable auxiliary-hash-function
// abstraction used by the generator package, and provides two built-in
// variants.
//
// A Family is a constructor: given a codomain size N and an RNG, it
// produces a fresh, independently-salted HashFn mapping arbitrary string
// keys to [0, N). Two HashFn values drawn from the same Family (one for
// f1, one for f2) must be statistically independent — in practice this
// means each draws its own salt from the supplied RNG.
//
// Built-in variants:
//
//   - StringSaltFamily: a byte-string salt, XOR-summed against the key's
//     bytes (the XORHash family from original_source/examples/xorhash.py,
//     not the bit-shifting DEKhash family).
//   - IntVectorFamily: a vector of small integers, one per byte position,
//     multiplied against the key's byte values and summed.
//
// Both salts start empty and grow lazily the first time a key longer than
// the current salt is evaluated; growth draws fresh randomness from the
// HashFn's RNG, so results remain deterministic for a given seed and a
// given order of Evaluate calls.
//
// Each HashFn also exposes a TemplateFragment: a snippet of template text
// that, once its placeholders are substituted by the codegen package,
// reproduces the evaluator in the target language emitted code is written
// in.
package hashfamily
