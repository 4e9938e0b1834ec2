package negfarness_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/submodk/graphmodel"
	"github.com/katalvlaran/submodk/score/negfarness"
)

func buildPath(t *testing.T, n int) *graphmodel.Graph {
	t.Helper()

	g, err := graphmodel.New(n)
	require.NoError(t, err)
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}
	require.NoError(t, g.Finalize())

	return g
}

func TestStructure_EvaluateEmptySet(t *testing.T) {
	t.Parallel()

	g := buildPath(t, 4)
	s := negfarness.New(g)
	require.Equal(t, s.EvaluateGeneral(nil), s.EvaluateEmptySet())
}

func TestStructure_EvaluateGeneral_WholeSetIsZero(t *testing.T) {
	t.Parallel()

	g := buildPath(t, 4) // 0-1-2-3
	s := negfarness.New(g)

	// every vertex is its own nearest member: farness is 0, F = 0
	require.Equal(t, int64(0), s.EvaluateGeneral([]int{0, 1, 2, 3}))
}

func TestStructure_EvaluateGeneral_Monotone(t *testing.T) {
	t.Parallel()

	g := buildPath(t, 5) // 0-1-2-3-4
	s := negfarness.New(g)

	fEmpty := s.EvaluateGeneral(nil)
	fOne := s.EvaluateGeneral([]int{2})
	fTwo := s.EvaluateGeneral([]int{0, 4})

	require.Less(t, fEmpty, fOne)
	require.LessOrEqual(t, fOne, fTwo)
}

func TestStructure_VisitNewDepth_MatchesDirectEvaluation(t *testing.T) {
	t.Parallel()

	g := buildPath(t, 5)
	s := negfarness.New(g)
	require.NoError(t, s.InitializeHelpingStructures(2))

	prefix := []int{0, 3}
	require.NoError(t, s.VisitNewDepth(prefix))
	require.NoError(t, s.ReturnFromLastDepth())

	// after restoring, nothing should have changed about direct evaluation
	require.Equal(t, s.EvaluateGeneral(prefix), s.EvaluateXD(prefix))
}
