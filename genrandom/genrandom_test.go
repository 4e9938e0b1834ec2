package genrandom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/submodk/genrandom"
)

func TestGraph_IsConnectedAndReproducible(t *testing.T) {
	t.Parallel()

	g1, err := genrandom.Graph(20, 0.05, 7)
	require.NoError(t, err)
	require.True(t, g1.Finalized())

	for v := 1; v < g1.N(); v++ {
		require.Lessf(t, g1.Distance(0, v), float64(g1.N()), "vertex %d unreachable from 0", v)
	}

	g2, err := genrandom.Graph(20, 0.05, 7)
	require.NoError(t, err)
	for v := 0; v < g1.N(); v++ {
		require.ElementsMatch(t, g1.Neighbors(v), g2.Neighbors(v))
	}
}

func TestGraph_SmallN(t *testing.T) {
	t.Parallel()

	g, err := genrandom.Graph(1, 0.5, 1)
	require.NoError(t, err)
	require.Equal(t, 1, g.N())
}

func TestPoints_ReproducibleAndBounded(t *testing.T) {
	t.Parallel()

	p1, err := genrandom.Points(10, 3, 42)
	require.NoError(t, err)
	p2, err := genrandom.Points(10, 3, 42)
	require.NoError(t, err)
	require.True(t, p1.Finalized())

	for i := 0; i < p1.N(); i++ {
		require.Equal(t, p1.Row(i), p2.Row(i))
		for _, v := range p1.Row(i) {
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 1.0)
		}
	}
}

func TestPoints_RejectsTooFew(t *testing.T) {
	t.Parallel()

	_, err := genrandom.Points(0, 2, 1)
	require.ErrorIs(t, err, genrandom.ErrTooFewPoints)
}
