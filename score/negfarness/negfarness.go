// Package negfarness implements the negative group farness objective: for a
// set S, farness(S) = sum over every ground element v of the distance from
// v to its nearest member of S. The search maximizes F(S) = -farness(S), so
// growing S can only raise F (each new member can only shorten, never
// lengthen, every v's nearest-in-S distance) — the monotone submodular
// shape score.Structure requires.
//
// Distances come from graphmodel's metric closure (Floyd-Warshall over
// matrix.BuildMetricClosure); disconnected pairs surface there as +Inf,
// which this package clamps to a deterministic finite sentinel (the vertex
// count n) before folding into the int64 score so the search's integer
// arithmetic never has to reason about infinities.
package negfarness

import (
	"github.com/katalvlaran/submodk/graphmodel"
	"github.com/katalvlaran/submodk/score"
)

var _ score.Structure[int64] = (*Structure)(nil)

// Structure implements score.Structure[int64] over a finalized graph.
type Structure struct {
	g *graphmodel.Graph

	// nearest[v] is v's current minimum distance to any member of the
	// active prefix S; it is recomputed from scratch on VisitNewDepth since
	// the hot loop favors simplicity over incremental maintenance at the
	// modest n this exact-search regime targets.
	nearest []int64

	// depthStack holds one snapshot of nearest per visited depth, so
	// ReturnFromLastDepth can restore the parent's view in O(n) without
	// recomputation.
	depthStack [][]int64
}

// sentinel is the finite distance substituted for graphmodel's +Inf
// (disconnected pair), chosen as n — larger than any real shortest path in
// a connected component of size <= n, and reproducible without relying on
// floating-point infinity leaking into the int64 score domain.
func sentinel(n int) int64 { return int64(n) }

// New wraps a finalized graph for the negative group farness objective. g
// must already have had Finalize called.
func New(g *graphmodel.Graph) *Structure {
	return &Structure{g: g}
}

// N reports the ground-set cardinality.
func (s *Structure) N() int { return s.g.N() }

// Finalize is a no-op: graphmodel.Graph is finalized by its own caller
// before being wrapped here.
func (s *Structure) Finalize() error { return nil }

// InitializeHelpingStructures allocates the per-vertex nearest-distance
// scratch and the backtracking stack, sized for a depth-k search.
func (s *Structure) InitializeHelpingStructures(k int) error {
	n := s.g.N()
	s.nearest = make([]int64, n)
	for v := 0; v < n; v++ {
		s.nearest[v] = sentinel(n)
	}
	s.depthStack = make([][]int64, 0, k)

	return nil
}

// VisitNewDepth recomputes nearest[] for the prefix s and pushes the
// previous snapshot for later restoration.
func (s *Structure) VisitNewDepth(prefix []int) error {
	n := s.g.N()

	snapshot := make([]int64, n)
	copy(snapshot, s.nearest)
	s.depthStack = append(s.depthStack, snapshot)

	for v := 0; v < n; v++ {
		best := sentinel(n)
		for _, m := range prefix {
			d := s.distanceOf(v, m)
			if d < best {
				best = d
			}
		}
		s.nearest[v] = best
	}

	return nil
}

// ReturnFromLastDepth restores the nearest[] snapshot taken by the matching
// VisitNewDepth.
func (s *Structure) ReturnFromLastDepth() error {
	last := len(s.depthStack) - 1
	copy(s.nearest, s.depthStack[last])
	s.depthStack = s.depthStack[:last]

	return nil
}

func (s *Structure) distanceOf(v, m int) int64 {
	d := s.g.Distance(v, m)
	if d < 0 { // unreachable sign convention never occurs; defensive clamp only
		d = 0
	}
	n := s.g.N()
	if d > float64(sentinel(n)) {
		return sentinel(n)
	}
	if isInf(d) {
		return sentinel(n)
	}
	return int64(d)
}

func isInf(d float64) bool { return d > 1e300 }

// EvaluateEmptySet returns F(∅) = -farness(∅), the sum of n sentinel
// distances (every vertex is "infinitely" far from no one).
func (s *Structure) EvaluateEmptySet() int64 {
	n := int64(s.g.N())
	return -n * sentinel(s.g.N())
}

// Evaluate1D, Evaluate2D, EvaluateXD, and EvaluateGeneral all compute the
// exact farness of s directly; negfarness has no incremental shortcut
// cheaper than the O(n*|s|) direct computation, so every variant delegates
// to the same general evaluator. The split signatures exist purely to
// satisfy score.Structure's contract.
func (s *Structure) Evaluate1D(set []int) int64 { return s.EvaluateGeneral(set) }
func (s *Structure) Evaluate2D(set []int) int64 { return s.EvaluateGeneral(set) }
func (s *Structure) EvaluateXD(set []int) int64 { return s.EvaluateGeneral(set) }

// EvaluateGeneral returns F(set) = -farness(set) computed directly, without
// relying on the nearest[] incremental cache (safe to call for an arbitrary
// candidate set, not just the active search prefix).
func (s *Structure) EvaluateGeneral(set []int) int64 {
	n := s.g.N()
	if len(set) == 0 {
		return s.EvaluateEmptySet()
	}

	var farness int64
	for v := 0; v < n; v++ {
		best := sentinel(n)
		for _, m := range set {
			d := s.distanceOf(v, m)
			if d < best {
				best = d
			}
		}
		farness += best
	}

	return -farness
}

// MaxReachableScore is 0: farness(S) >= 0 always, with equality when S
// covers every vertex at distance 0 from itself plus all others at
// distance 0 — the supremum -0 = 0 is attained only in the degenerate case
// S = all vertices of an (essentially) zero-diameter graph, but it remains
// a valid, never-exceeded upper bound for any S.
func (s *Structure) MaxReachableScore() int64 { return 0 }
