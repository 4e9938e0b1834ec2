// Package kmedoid implements the Euclidean k-medoid objective: choosing S
// as the set of cluster medoids, every other point is assigned to its
// nearest medoid, and the natural quantity to minimize is the total
// within-cluster distance sumMinDist(S) = sum over every point v of
// min_{s in S} dist(v, s). Since the search engine only ever maximizes,
// this package internally maximizes F(S) = -sumMinDist(S) (monotone
// increasing and submodular by the same nearest-distance argument as
// score/negfarness) and implements score.Reporter to flip the sign back
// for display, so a human sees the natural positive "total within-cluster
// distance" instead of the internal negated value.
package kmedoid

import (
	"github.com/katalvlaran/submodk/pointsmodel"
	"github.com/katalvlaran/submodk/score"
)

var (
	_ score.Structure[float64] = (*Structure)(nil)
	_ score.Reporter[float64]  = (*Structure)(nil)
)

// Structure implements score.Structure[float64] (and score.Reporter) over
// a finalized point set.
type Structure struct {
	p *pointsmodel.Points

	nearest []float64

	depthStack [][]float64
}

// New wraps a finalized point set for the k-medoid objective.
func New(p *pointsmodel.Points) *Structure {
	return &Structure{p: p}
}

// N reports the ground-set cardinality.
func (s *Structure) N() int { return s.p.N() }

// Finalize is a no-op: pointsmodel.Points is finalized by its own caller.
func (s *Structure) Finalize() error { return nil }

// InitializeHelpingStructures allocates the per-point nearest-distance
// scratch and backtrack stack.
func (s *Structure) InitializeHelpingStructures(k int) error {
	n := s.p.N()
	s.nearest = make([]float64, n)
	for v := 0; v < n; v++ {
		s.nearest[v] = maxFloat(n)
	}
	s.depthStack = make([][]float64, 0, k)

	return nil
}

// maxFloat bounds the "no medoid assigned yet" distance: any real point
// cloud's maximum pairwise distance is finite, so any sufficiently large
// constant serves as a sentinel that a real nearest-distance can always
// beat. n stands in for an a-priori diameter bound.
func maxFloat(n int) float64 {
	return float64(n) * 1e6
}

// VisitNewDepth recomputes nearest[] for prefix from scratch.
func (s *Structure) VisitNewDepth(prefix []int) error {
	n := s.p.N()

	snapshot := make([]float64, n)
	copy(snapshot, s.nearest)
	s.depthStack = append(s.depthStack, snapshot)

	for v := 0; v < n; v++ {
		best := maxFloat(n)
		for _, m := range prefix {
			d := s.p.Distance(v, m)
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

// EvaluateEmptySet returns F(∅) = -sumMinDist(∅), every point at the
// unassigned sentinel distance.
func (s *Structure) EvaluateEmptySet() float64 {
	n := s.p.N()
	return -float64(n) * maxFloat(n)
}

// Evaluate1D, Evaluate2D, and EvaluateXD all delegate to EvaluateGeneral;
// see score/negfarness for why no incremental shortcut is cheaper here.
func (s *Structure) Evaluate1D(set []int) float64 { return s.EvaluateGeneral(set) }
func (s *Structure) Evaluate2D(set []int) float64 { return s.EvaluateGeneral(set) }
func (s *Structure) EvaluateXD(set []int) float64 { return s.EvaluateGeneral(set) }

// EvaluateGeneral returns F(set) = -sumMinDist(set) computed directly.
func (s *Structure) EvaluateGeneral(set []int) float64 {
	n := s.p.N()
	if len(set) == 0 {
		return s.EvaluateEmptySet()
	}

	var sum float64
	for v := 0; v < n; v++ {
		best := maxFloat(n)
		for _, m := range set {
			d := s.p.Distance(v, m)
			if d < best {
				best = d
			}
		}
		sum += best
	}

	return -sum
}

// MaxReachableScore is 0: sumMinDist(S) >= 0 always, attained in the
// degenerate zero-spread point cloud.
func (s *Structure) MaxReachableScore() float64 { return 0 }

// DisplayScore flips the internally-maximized negative score back to the
// natural positive total within-cluster distance.
func (s *Structure) DisplayScore(internal float64) float64 { return -internal }
