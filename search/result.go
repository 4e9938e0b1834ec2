package search

import "github.com/katalvlaran/submodk/score"

// Result is what TreeSearchIterative hands back: the best set found, its
// score (rendered for display via score.Reporter when the objective
// implements it), and the run's budget accounting.
type Result[T score.SF] struct {
	BestScore T
	BestSet   []int

	K int
	N int

	SFEvaluations  int64
	ElapsedSeconds float64
	TimedOut       bool
}
