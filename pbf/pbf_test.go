package pbf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/submodk/pbf"
)

func TestSolve_DPMatchesBruteForce(t *testing.T) {
	t.Parallel()

	ids := []int{0, 1, 2, 3, 4, 5}
	gains := []int64{10, 8, 7, 5, 3, 1}

	for r := 0; r <= len(gains); r++ {
		dp := pbf.Solve(ids, gains, 2, r, pbf.DP, false)
		bf := pbf.Solve(ids, gains, 2, r, pbf.BruteForce, false)
		require.Equalf(t, bf.Value, dp.Value, "r=%d: DP and BruteForce bounds must agree", r)
	}
}

func TestSolve_ZeroRequest(t *testing.T) {
	t.Parallel()

	ids := []int{0, 1}
	gains := []int64{5, 3}
	res := pbf.Solve(ids, gains, 1, 0, pbf.DP, false)
	require.Equal(t, int64(0), res.Value)
}

func TestSolve_SingleBlockTakesTopR(t *testing.T) {
	t.Parallel()

	ids := []int{0, 1, 2}
	gains := []int64{9, 5, 1}
	res := pbf.Solve(ids, gains, 3, 2, pbf.DP, false)
	require.Equal(t, int64(14), res.Value)
}

func TestSolve_Reconstruct_ChosenCountMatchesR(t *testing.T) {
	t.Parallel()

	ids := []int{0, 1, 2, 3}
	gains := []int64{6, 4, 3, 1}
	res := pbf.Solve(ids, gains, 2, 2, pbf.DP, true)

	var count int
	for _, block := range res.Chosen {
		count += len(block)
	}
	require.Equal(t, 2, count)
}
