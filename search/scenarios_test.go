package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/submodk/genrandom"
	"github.com/katalvlaran/submodk/graphmodel"
	"github.com/katalvlaran/submodk/pointsmodel"
	"github.com/katalvlaran/submodk/score/domset"
	"github.com/katalvlaran/submodk/score/kmedoid"
	"github.com/katalvlaran/submodk/score/negfarness"
	"github.com/katalvlaran/submodk/search"
)

func buildEdges(t *testing.T, n int, edges [][2]int) *graphmodel.Graph {
	t.Helper()

	g, err := graphmodel.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	require.NoError(t, g.Finalize())

	return g
}

// A triangle is fully symmetric, so every singleton scores the same and the
// smaller-id tie-break decides: the winner is {0}, with farness 2 (the two
// other vertices at distance 1 each).
func TestScenario_TriangleFarness_K1(t *testing.T) {
	t.Parallel()

	g := buildEdges(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})

	got, err := search.Run[int64](negfarness.New(g), search.DefaultConfig(1))
	require.NoError(t, err)
	require.Equal(t, int64(-2), got.BestScore)
	require.Equal(t, []int{0}, got.BestSet)
}

// On the path 0-1-2-3, {1, 2} dominates all four vertices; since coverage
// equals n the search short-circuits on its score cap right after the
// greedy warm start.
func TestScenario_Path4DominatingSet_K2(t *testing.T) {
	t.Parallel()

	g := buildEdges(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	got, err := search.Run[int64](domset.New(g), search.DefaultConfig(2))
	require.NoError(t, err)
	require.Equal(t, int64(4), got.BestScore)
	require.Equal(t, []int{1, 2}, got.BestSet)
}

// Two disconnected components: unreachable pairs fold into the finite
// sentinel (n), so the best pair picks one vertex per component. All four
// such pairs tie at farness 2; the tie-break lands on {0, 2}.
func TestScenario_DisconnectedPairFarness_K2(t *testing.T) {
	t.Parallel()

	g := buildEdges(t, 4, [][2]int{{0, 1}, {2, 3}})

	got, err := search.Run[int64](negfarness.New(g), search.DefaultConfig(2))
	require.NoError(t, err)
	require.Equal(t, int64(-2), got.BestScore)
	require.Equal(t, []int{0, 2}, got.BestSet)
}

// Two collinear clusters of two points each: one medoid per cluster, each
// non-medoid at distance 1 from its medoid, total within-cluster distance
// 2.0 (the reported score is the positive total, not the internal negated
// value the search maximizes).
func TestScenario_TwoClustersKMedoid_K2(t *testing.T) {
	t.Parallel()

	p, err := pointsmodel.New([][]float64{{0, 0}, {0, 1}, {10, 0}, {10, 1}})
	require.NoError(t, err)
	require.NoError(t, p.Finalize())

	got, err := search.Run[float64](kmedoid.New(p), search.DefaultConfig(2))
	require.NoError(t, err)
	require.InDelta(t, 2.0, got.BestScore, 1e-9)
	require.Equal(t, []int{0, 2}, got.BestSet)
}

// k = n is degenerate: the only size-n set is the whole ground set.
func TestScenario_DegenerateKEqualsN(t *testing.T) {
	t.Parallel()

	g := buildEdges(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	got, err := search.Run[int64](domset.New(g), search.DefaultConfig(4))
	require.NoError(t, err)
	require.Equal(t, int64(4), got.BestScore)
	require.Equal(t, []int{0, 1, 2, 3}, got.BestSet)
}

// A tight evaluation budget on a 20-vertex instance must stop the search
// early but still hand back a valid incumbent (at least the greedy seed).
// Farness is used because its score cap (zero) is unattainable here, so an
// early exit can only come from the budget.
func TestScenario_EvaluationBudgetShortCircuit(t *testing.T) {
	t.Parallel()

	g, err := genrandom.Graph(20, 0.15, 3)
	require.NoError(t, err)

	cfg := search.DefaultConfig(3)
	cfg.MaxSFEvaluations = 100

	got, err := search.Run[int64](negfarness.New(g), cfg)
	require.NoError(t, err)
	require.True(t, got.TimedOut)
	require.Len(t, got.BestSet, 3)
	require.LessOrEqual(t, got.SFEvaluations, cfg.MaxSFEvaluations)

	// the incumbent is a real set's score, far above the -n*sentinel floor
	require.Greater(t, got.BestScore, int64(-20*20))
}
