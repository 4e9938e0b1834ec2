package graphmodel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/submodk/graphmodel"
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

func TestGraph_New_RejectsNegativeSize(t *testing.T) {
	t.Parallel()

	_, err := graphmodel.New(-1)
	require.ErrorIs(t, err, graphmodel.ErrNegativeSize)
}

func TestGraph_AddEdge_OutOfRange(t *testing.T) {
	t.Parallel()

	g, err := graphmodel.New(3)
	require.NoError(t, err)
	require.ErrorIs(t, g.AddEdge(0, 5), graphmodel.ErrVertexOutOfRange)
}

func TestGraph_Neighbors(t *testing.T) {
	t.Parallel()

	g := buildPath(t, 4) // 0-1-2-3
	require.ElementsMatch(t, []int{1}, g.Neighbors(0))
	require.ElementsMatch(t, []int{0, 2}, g.Neighbors(1))
	require.ElementsMatch(t, []int{2}, g.Neighbors(3))
}

func TestGraph_Distance_PathLengths(t *testing.T) {
	t.Parallel()

	g := buildPath(t, 4) // 0-1-2-3
	require.Equal(t, float64(0), g.Distance(0, 0))
	require.Equal(t, float64(1), g.Distance(0, 1))
	require.Equal(t, float64(3), g.Distance(0, 3))
	require.Equal(t, g.Distance(1, 3), g.Distance(3, 1))
}

func TestGraph_Finalized(t *testing.T) {
	t.Parallel()

	g, err := graphmodel.New(2)
	require.NoError(t, err)
	require.False(t, g.Finalized())
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.Finalize())
	require.True(t, g.Finalized())
}
