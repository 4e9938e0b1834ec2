package pointsmodel

import "errors"

// Classification: construction-time validation errors.
var (
	// ErrEmptyPoints is returned when no rows are supplied to New.
	ErrEmptyPoints = errors.New("pointsmodel: no points")

	// ErrDimMismatch is returned when the supplied rows do not all share the
	// same dimensionality.
	ErrDimMismatch = errors.New("pointsmodel: inconsistent dimensionality")

	// ErrNotFinalized names the state before Finalize has built the distance
	// matrix. No function in this package returns it: Distance returns no
	// error and does not check Finalized().
	ErrNotFinalized = errors.New("pointsmodel: Finalize has not been called")
)
