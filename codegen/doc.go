// Package codegen implements the code-emission pipeline: given a key set
// (or key/hash pairs), a hash family, and an optional template, it runs
// the generator, validates the invariants between f1, f2, and G, and
// substitutes the generated parameters into the template's named
// placeholders to produce runnable code.
//
// Substitution is a deliberately simple $-prefixed placeholder scheme
// ($NAME, with $$ escaping a literal $), not a general template engine —
// the target language of emitted code is arbitrary, and a general engine
// would have to understand that language's syntax to be worth its
// complexity. An unknown placeholder is reported as ErrUnknownPlaceholder
// and a malformed '$' as ErrDanglingDollar; placeholders the template
// doesn't use are silently ignored.
package codegen
