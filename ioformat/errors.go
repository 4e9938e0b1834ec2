package ioformat

import "errors"

// Sentinel errors for instance parsing. Callers at the CLI boundary decide
// how each is reported (a missing file is a resource problem, a malformed
// line is a bad instance).
var (
	// ErrNoEdges is returned when a graph file contains no parsable edge
	// lines.
	ErrNoEdges = errors.New("ioformat: graph file has no edges")

	// ErrMalformedLine is returned when a non-comment, non-blank line does
	// not parse into the expected token shape.
	ErrMalformedLine = errors.New("ioformat: malformed line")

	// ErrNoPoints is returned when a data points file contains no parsable
	// rows.
	ErrNoPoints = errors.New("ioformat: data points file has no rows")

	// ErrDimMismatch is returned when data point rows disagree on
	// dimensionality.
	ErrDimMismatch = errors.New("ioformat: inconsistent point dimensionality")

	// ErrInitialSolutionShape is returned when the initial-solution file's
	// lenient parse finds no `key:value` split or no integer in the value.
	// The key name itself is not checked.
	ErrInitialSolutionShape = errors.New("ioformat: initial solution file missing \"s\" array")
)
