// Package domset implements the partial dominating set objective:
// F(S) = |S ∪ N(S)|, the number of ground elements either in S or adjacent
// to a member of S. Adding an element can only grow the covered set, and
// the marginal gain of any element shrinks as S grows (once a vertex is
// already covered, covering it again adds nothing) — the monotone
// submodular coverage-function shape score.Structure requires.
//
// Built on graphmodel's cached neighbor lists.
package domset

import (
	"github.com/katalvlaran/submodk/graphmodel"
	"github.com/katalvlaran/submodk/score"
)

var _ score.Structure[int64] = (*Structure)(nil)

// Structure implements score.Structure[int64] over a finalized graph.
type Structure struct {
	g *graphmodel.Graph

	// covered[v] is true while v is in S or adjacent to a member of S for
	// the currently active search prefix.
	covered []bool

	// coveredCount is the running popcount of covered, i.e. the current
	// F(prefix).
	coveredCount int

	depthStack []depthSnapshot
}

type depthSnapshot struct {
	covered []bool
	count   int
}

// New wraps a finalized graph for the partial dominating set objective.
func New(g *graphmodel.Graph) *Structure {
	return &Structure{g: g}
}

// N reports the ground-set cardinality.
func (s *Structure) N() int { return s.g.N() }

// Finalize is a no-op: graphmodel.Graph is finalized by its own caller.
func (s *Structure) Finalize() error { return nil }

// InitializeHelpingStructures allocates the coverage bitmap and backtrack
// stack.
func (s *Structure) InitializeHelpingStructures(k int) error {
	s.covered = make([]bool, s.g.N())
	s.coveredCount = 0
	s.depthStack = make([]depthSnapshot, 0, k)

	return nil
}

// VisitNewDepth recomputes coverage for prefix from scratch, the same
// simplicity tradeoff score/negfarness makes: O(n + |prefix|*avgDegree)
// per visit, cheap at this system's exact-search scale.
func (s *Structure) VisitNewDepth(prefix []int) error {
	n := s.g.N()

	snapCov := make([]bool, n)
	copy(snapCov, s.covered)
	s.depthStack = append(s.depthStack, depthSnapshot{covered: snapCov, count: s.coveredCount})

	for i := range s.covered {
		s.covered[i] = false
	}
	s.coveredCount = 0

	for _, m := range prefix {
		s.markCovered(m)
		for _, nb := range s.g.Neighbors(m) {
			s.markCovered(nb)
		}
	}

	return nil
}

func (s *Structure) markCovered(v int) {
	if !s.covered[v] {
		s.covered[v] = true
		s.coveredCount++
	}
}

// ReturnFromLastDepth restores the snapshot taken by the matching
// VisitNewDepth.
func (s *Structure) ReturnFromLastDepth() error {
	last := len(s.depthStack) - 1
	snap := s.depthStack[last]
	copy(s.covered, snap.covered)
	s.coveredCount = snap.count
	s.depthStack = s.depthStack[:last]

	return nil
}

// EvaluateEmptySet returns F(∅) = 0.
func (s *Structure) EvaluateEmptySet() int64 { return 0 }

// Evaluate1D, Evaluate2D, and EvaluateXD all compute coverage directly from
// set; domset has no incremental shortcut cheaper than the direct
// computation that is also safe for an arbitrary (not-necessarily-active)
// candidate set, so every variant delegates to EvaluateGeneral.
func (s *Structure) Evaluate1D(set []int) int64 { return s.EvaluateGeneral(set) }
func (s *Structure) Evaluate2D(set []int) int64 { return s.EvaluateGeneral(set) }
func (s *Structure) EvaluateXD(set []int) int64 { return s.EvaluateGeneral(set) }

// EvaluateGeneral returns |set ∪ N(set)| computed directly.
func (s *Structure) EvaluateGeneral(set []int) int64 {
	if len(set) == 0 {
		return 0
	}

	seen := make(map[int]struct{}, len(set)*4)
	for _, m := range set {
		seen[m] = struct{}{}
		for _, nb := range s.g.Neighbors(m) {
			seen[nb] = struct{}{}
		}
	}

	return int64(len(seen))
}

// MaxReachableScore is n: no set can cover more than every ground element.
func (s *Structure) MaxReachableScore() int64 { return int64(s.g.N()) }
