package graphmodel

import "errors"

// Classification: construction-time validation errors. Callers at the I/O
// boundary (ioformat, internal/cli) turn these into the Resource category of
// the error taxonomy; graphmodel itself stays agnostic of that taxonomy.
var (
	// ErrNegativeSize is returned when New is asked to build a graph over a
	// negative ground-set size.
	ErrNegativeSize = errors.New("graphmodel: negative vertex count")

	// ErrVertexOutOfRange is returned when AddEdge references an index
	// outside [0, N()).
	ErrVertexOutOfRange = errors.New("graphmodel: vertex index out of range")

	// ErrNotFinalized names the state before Finalize has built the
	// adjacency matrix and metric closure. No function in this package
	// returns it: Distance and Neighbors return no error and do not check
	// Finalized().
	ErrNotFinalized = errors.New("graphmodel: Finalize has not been called")
)
