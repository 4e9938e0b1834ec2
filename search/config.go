package search

import "time"

// PBFAlgorithm selects the PBFSolver composition search mode.
type PBFAlgorithm int

const (
	// PBFDynamic is the default bounded-knapsack DP mode.
	PBFDynamic PBFAlgorithm = iota
	// PBFBruteForce enumerates compositions directly; simpler, exponential
	// in block count.
	PBFBruteForce
)

// Config is the TreeSearchIterative Configuration: parsed once, read-only,
// selecting which bounds run and the search's budgets.
type Config struct {
	K int

	EnableUB1 bool
	EnableUB2 bool
	EnablePBF bool
	PBFAlgo   PBFAlgorithm
	PBFBlock  int

	TimeLimit        time.Duration // 0 means unbounded
	MaxSFEvaluations int64         // 0 means unbounded

	// InitialSolution, if non-nil, seeds the incumbent instead of the
	// greedy warm start, provided it actually scores higher.
	InitialSolution []int
}

// DefaultConfig returns a Config with every bound enabled, DP PBF mode, a
// block size of 4, and no budgets — matching the CLI's documented defaults.
func DefaultConfig(k int) Config {
	return Config{
		K:         k,
		EnableUB1: true,
		EnableUB2: true,
		EnablePBF: true,
		PBFAlgo:   PBFDynamic,
		PBFBlock:  4,
	}
}
