// Package matrix offers matrix-based graph representations used by the
// branch-and-bound search.
//
// The matrix package provides:
//
//   - AdjacencyMatrix with O(1) edge-weight lookups and O(V²) memory.
//   - BuildMetricClosure for all-pairs shortest-path distances
//     (Floyd-Warshall), used to precompute the pairwise-distance cache.
//   - Dense, the flat row-major float64 storage backing both.
//
// Matrices are best for dense or small graphs where O(V²) memory and
// O(V² + E) build time are acceptable.
package matrix
