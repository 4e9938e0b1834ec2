package kmedoid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/submodk/pointsmodel"
	"github.com/katalvlaran/submodk/score/kmedoid"
)

func buildLine(t *testing.T) *pointsmodel.Points {
	t.Helper()

	p, err := pointsmodel.New([][]float64{{0}, {1}, {2}, {10}})
	require.NoError(t, err)
	require.NoError(t, p.Finalize())

	return p
}

func TestStructure_EvaluateGeneral_SelfMedoidIsZeroCost(t *testing.T) {
	t.Parallel()

	p := buildLine(t)
	s := kmedoid.New(p)

	// choosing every point as its own medoid: zero total distance
	require.Equal(t, float64(0), s.EvaluateGeneral([]int{0, 1, 2, 3}))
}

func TestStructure_DisplayScore_FlipsSign(t *testing.T) {
	t.Parallel()

	p := buildLine(t)
	s := kmedoid.New(p)

	internal := s.EvaluateGeneral([]int{0})
	require.Less(t, internal, float64(0))
	require.Equal(t, -internal, s.DisplayScore(internal))
}

func TestStructure_Monotone(t *testing.T) {
	t.Parallel()

	p := buildLine(t)
	s := kmedoid.New(p)

	f1 := s.EvaluateGeneral([]int{0})
	f2 := s.EvaluateGeneral([]int{0, 3})
	require.LessOrEqual(t, f1, f2)
}

func TestStructure_VisitNewDepth_MatchesGeneral(t *testing.T) {
	t.Parallel()

	p := buildLine(t)
	s := kmedoid.New(p)
	require.NoError(t, s.InitializeHelpingStructures(1))

	prefix := []int{1}
	require.NoError(t, s.VisitNewDepth(prefix))
	require.NoError(t, s.ReturnFromLastDepth())
	require.Equal(t, s.EvaluateGeneral(prefix), s.EvaluateXD(prefix))
}
