// SPDX-License-Identifier: MIT
//.go:build test

package matrix

// Test-Bridge (White-Box) for Private Kernels and Options Snapshot
//
// Purpose:
//   - Expose a few UNEXPORTED kernels and internal options snapshot to matrix_test.
//   - Enable white-box verification of fast-path (*Dense) vs generic fallback.
//
// Build Policy:
//   - The file carries no working build constraint (the comment on line 2 is not
//     a `//go:build` directive), so it compiles into every build, and the names
//     below are part of the package's exported API for any importer.
//   - File is in package matrix, so it can access private symbols.
//
// Provided Surface:
//   - OptionsSnapshot + NewMatrixOptionsSnapshot_TestOnly / GatherOptionsSnapshot_TestOnly:
//     stable, read-only view of internal Options for tests without using package matrix (non-internal) tests.
//
// Behavior & Determinism:
//   - No allocations beyond what the wrapped functions do.
//   - Deterministic wrappers; no side effects.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options changes,
//     update snapshotOf(...) accordingly (tests will catch drift).
//
// AI-Hints:
//   - Prefer keeping ALL test-only bridges co-located here to avoid clutter across files.
//   - If a private helper changes signature, mirror the change here once, not across many tests.

var (
	// InitDistancesInPlace exposes the adjacency→distance conversion kernel
	// for white-box APSP tests.
	InitDistancesInPlace = initDistancesInPlace
)

// NewAdjacencyForTest assembles an AdjacencyMatrix around a prepared Dense
// with explicit vertex ids and policy flags, bypassing graph construction.
// ids[i] names the vertex at row/column i.
func NewAdjacencyForTest(d *Dense, ids []string, directed, allowLoops bool) *AdjacencyMatrix {
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}
	return &AdjacencyMatrix{
		Mat:           d,
		VertexIndex:   idx,
		vertexByIndex: append([]string(nil), ids...),
		opts: Options{
			directed:   directed,
			weighted:   true,
			allowMulti: false,
			allowLoops: allowLoops,
		},
	}
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly       = panicEpsilonInvalid
	PanicEdgeThresholdInvalid_TestOnly = panicEdgeThresholdInvalid
)

// --- options snapshot bridge --------------------------------------------------

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
// Purpose:
//   - Allow matrix_test to assert defaults and "last writer wins" semantics
//     without accessing unexported fields directly.
//
// Determinism:
//   - Pure struct copy; no side effects.
type OptionsSnapshot struct {
	Eps               float64
	ValidateNaNInf    bool
	AllowInfDistances bool

	Directed    bool
	AllowMulti  bool
	AllowLoops  bool
	Weighted    bool
	MetricClose bool

	EdgeThreshold float64
	KeepWeights   bool
	BinaryWeights bool
}

// NewMatrixOptionsSnapshot_TestOnly builds Options via public Option funcs and returns a snapshot.
// Implementation:
//   - Stage 1: o := NewMatrixOptions(opts...)
//   - Stage 2: snapshotOf(o)
func NewMatrixOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := NewMatrixOptions(opts...)

	return snapshotOf(o)
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal derivation.
// Implementation:
//   - Stage 1: o := gatherOptions(opts...) // internal constructor
//   - Stage 2: snapshotOf(o)
//
// Notes:
//   - Keep this wrapper in sync if the internal derivation pipeline changes.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return snapshotOf(o)
}

// snapshotOf copies internal fields to a public struct. Keep in sync with Options layout.
// Behavior highlights:
//   - No allocations besides the snapshot value itself.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Eps:               o.eps,
		ValidateNaNInf:    o.validateNaNInf,
		AllowInfDistances: o.allowInfDistances,

		Directed:    o.directed,
		AllowMulti:  o.allowMulti,
		AllowLoops:  o.allowLoops,
		Weighted:    o.weighted,
		MetricClose: o.metricClose,

		EdgeThreshold: o.edgeThreshold,
		KeepWeights:   o.keepWeights,
		BinaryWeights: o.binaryWeights,
	}
}
