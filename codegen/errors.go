package codegen

import "errors"

// ErrUnknownPlaceholder is returned when the template references a
// placeholder name that substitute does not know how to fill.
var ErrUnknownPlaceholder = errors.New("codegen: unknown template placeholder")

// ErrDanglingDollar is returned when a "$" at the end of the template (or
// followed by a character that can neither start a placeholder name nor
// form a "$$" escape) cannot be resolved.
var ErrDanglingDollar = errors.New("codegen: malformed '$' escape in template")

// ErrInconsistentHashFns is an internal invariant violation: f1 and f2
// disagree on N, or on salt length, after a successful Generate call.
// This should never happen given a well-formed hash family; surfacing it
// as an error rather than panicking keeps the failure mode consistent
// with the rest of this package.
var ErrInconsistentHashFns = errors.New("codegen: f1 and f2 disagree on N or salt length")
