package genrandom

import "errors"

// Classification: construction-time validation errors.
var (
	// ErrTooFewPoints mirrors the invariant New requires: at least one
	// point, at least one dimension.
	ErrTooFewPoints = errors.New("genrandom: need at least 1 point and 1 dimension")
)
