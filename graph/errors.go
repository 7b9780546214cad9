package graph

import "errors"

// ErrInvalidVertexCount is returned by New when N < 1.
var ErrInvalidVertexCount = errors.New("graph: vertex count must be >= 1")

// ErrVertexOutOfRange is returned by Connect when either endpoint falls
// outside [0, N).
var ErrVertexOutOfRange = errors.New("graph: vertex index out of range")
