// Package generator implements the randomized retry loop at the center of
// the Czech–Havas–Majewski construction: pick a fresh pair of auxiliary
// hash functions, build the induced graph, try to assign vertex values,
// and on failure retry — growing the codomain size every so many failures
// — until an acyclic graph is found or a hard trial cap is exceeded.
//
// Generate is the only randomized operation in this module; everything
// downstream of a successful call (the format and codegen packages) is
// deterministic given its result. A Generate call owns its Graph and
// HashFn instances exclusively: a failed trial's graph and hash pair are
// discarded immediately, so peak memory is O(N + K).
package generator
