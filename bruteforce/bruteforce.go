// Package bruteforce provides the n-choose-k exhaustive reference search
// used only by tests as ground truth for the exact branch-and-bound
// engine — never by the production search path.
package bruteforce

import "github.com/katalvlaran/submodk/score"

// ExhaustiveSearch evaluates every size-k subset of [0, n) and returns the
// best score and a corresponding optimal set (smallest-id-first among ties,
// matching the tree search's own tie-break rule so the two can be compared
// set-for-set in tests, not just score-for-score).
func ExhaustiveSearch[T score.SF](structure score.Structure[T], n, k int) (T, []int) {
	best := score.NegInf[T]()
	var bestSet []int

	combo := make([]int, k)
	var generate func(start, depth int)
	generate = func(start, depth int) {
		if depth == k {
			set := append([]int(nil), combo...)
			val := structure.EvaluateGeneral(set)
			if val > best {
				best = val
				bestSet = set
			}
			return
		}

		for c := start; c <= n-(k-depth); c++ {
			combo[depth] = c
			generate(c+1, depth+1)
		}
	}

	if k > 0 && k <= n {
		generate(0, 0)
	}

	return best, bestSet
}
