package search

import "errors"

// Classification: precondition errors caught before the search loop ever
// starts; callers surface these as the Precondition category of the error
// taxonomy.
var (
	// ErrInvalidK is returned when k is outside [1, n].
	ErrInvalidK = errors.New("search: k must satisfy 1 <= k <= n")

	// ErrBadInitialSolution is returned when a seed solution has the wrong
	// size, an out-of-range id, or a repeated id.
	ErrBadInitialSolution = errors.New("search: initial solution must be k distinct ids in [0, n)")
)
