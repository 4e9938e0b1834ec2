// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).

package matrix

import (
	"errors"
	"fmt"
)

// matrixErrorf prefixes err with the operation tag: "Op: <err>". The
// sentinel stays reachable through errors.Is via %w.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented convention; no test checks the order):
// shape/index/NaN -> graph nil -> dimension mismatch -> structural violations
// -> export limitations (ErrMatrixNotImplemented).

var (
	// ErrBadShape is returned when requested shape is invalid (e.g., r<=0 or c<=0).
	// Algorithms must validate dense creation before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., two shapes compared by ValidateSameShape disagreeing.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, etc.).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates that a referenced VertexID is not present
	// in the current vertex index (adjacency).
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrMatrixNotImplemented marks an intentionally unsupported operation
	// on the matrix surface (e.g., ToGraph on MetricClosure adjacency).
	ErrMatrixNotImplemented = errors.New("matrix: operation not implemented")

	// ErrInvalidWeight — edge weight is NaN or ±Inf at ingestion stage.
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)

// BACKWARD-COMPATIBILITY ALIASES (kept to avoid breaking current callers).
// These are maintained to let existing code compile while we migrate internals
// to the unified names above. They are semantically identical sentinels.

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// ErrMatrixDimensionMismatch historically named the same condition as
// ErrDimensionMismatch. Alias so errors.Is keeps matching either name.
var ErrMatrixDimensionMismatch = ErrDimensionMismatch // Deprecated: use ErrDimensionMismatch.
