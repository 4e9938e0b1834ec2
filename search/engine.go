// Package search implements TreeSearchIterative: the depth-first branch-
// and-bound enumeration of size-k subsets maximizing a monotone submodular
// ScoreStructure, pruned by three cooperating upper bounds (UB1, UB2,
// UBPBF) evaluated in ascending order of cost.
//
// The per-depth frame stack is realized as Go's own call stack:
// engine.search is one frame's body, recursing into depth d+1 enters the
// child frame, and returning from it is the backtrack step. k stays small
// in the exact-search regime this system targets, so recursion depth is
// never a concern and a hand-rolled explicit stack would only reimplement
// what the runtime already provides.
package search

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/submodk/candidate"
	"github.com/katalvlaran/submodk/pbf"
	"github.com/katalvlaran/submodk/score"
	"github.com/katalvlaran/submodk/sicache"
)

type engine[T score.SF] struct {
	structure score.Structure[T]
	cfg       Config
	n         int
	k         int

	cms   []*candidate.Manager[T]
	cache *sicache.Cache[T]

	s []int // active prefix S, len == current depth

	start     time.Time
	sfEvals   int64
	bestScore T
	bestSet   []int
	timedOut  bool
}

// Run executes TreeSearchIterative over structure with the given
// Configuration and returns the best set of size cfg.K found, honoring any
// time/evaluation budget.
func Run[T score.SF](structure score.Structure[T], cfg Config) (Result[T], error) {
	n := structure.N()
	if cfg.K < 1 || cfg.K > n {
		return Result[T]{}, ErrInvalidK
	}

	if err := structure.InitializeHelpingStructures(cfg.K); err != nil {
		return Result[T]{}, fmt.Errorf("search.Run: initialize: %w", err)
	}

	e := &engine[T]{
		structure: structure,
		cfg:       cfg,
		n:         n,
		k:         cfg.K,
		cms:       make([]*candidate.Manager[T], cfg.K+1),
		cache:     sicache.New[T](),
		s:         make([]int, 0, cfg.K),
		start:     time.Now(),
		bestScore: score.NegInf[T](),
	}
	for d := range e.cms {
		e.cms[d] = candidate.New[T]()
	}

	fEmpty := structure.EvaluateEmptySet()
	e.sfEvals++

	gainScore, gainSet := e.greedySeed(fEmpty)
	e.bestScore = gainScore
	e.bestSet = gainSet

	if cfg.InitialSolution != nil {
		if err := validateInitialSolution(cfg.InitialSolution, n, cfg.K); err != nil {
			return Result[T]{}, err
		}
		if !e.budgetExceeded() {
			v := structure.EvaluateGeneral(cfg.InitialSolution)
			e.sfEvals++
			if v > e.bestScore {
				e.bestScore = v
				e.bestSet = append([]int(nil), cfg.InitialSolution...)
			}
		}
	}

	e.cms[0].FillCandidates(n)
	e.cms[0].EnsureSortedPrefix(n, e.refineFunc(fEmpty))

	e.search(0, fEmpty)

	// The incumbent records candidates in selection order; the reported set
	// is ascending so equal sets always serialize identically.
	sort.Ints(e.bestSet)

	return Result[T]{
		BestScore:      score.DisplayScore(structure, e.bestScore),
		BestSet:        e.bestSet,
		K:              cfg.K,
		N:              n,
		SFEvaluations:  e.sfEvals,
		ElapsedSeconds: time.Since(e.start).Seconds(),
		TimedOut:       e.timedOut,
	}, nil
}

// refineFunc returns the cache-backed marginal-gain refiner for the active
// prefix e.s, used by EnsureSortedPrefix's lazy-greedy loop. At the empty
// prefix it keys through the 1-D cache; deeper it keys through the 2-D
// cache as (last element of S, candidate) — sound because the cache is
// cleared on every descent, S is fixed between clears, and descendant
// frames can never write a pair whose first element is an S member.
func (e *engine[T]) refineFunc(fCurrent T) func(id int) T {
	return func(id int) T {
		// Once a budget is exhausted no further evaluations are allowed;
		// the placeholder gain only feeds pruning decisions taken while
		// the frames unwind — the incumbent is never updated from it.
		if e.budgetExceeded() {
			var zero T
			return zero
		}

		if len(e.s) == 0 {
			if gain, ok := e.cache.Get1D(e.s, id); ok {
				return gain
			}
		} else if gain, ok := e.cache.Get2D(e.s[len(e.s)-1], id); ok {
			return gain
		}

		trial := append(e.s, id)
		val := e.structure.EvaluateGeneral(trial)
		e.sfEvals++
		gain := val - fCurrent

		if len(e.s) == 0 {
			e.cache.Put1D(e.s, id, gain)
		} else {
			e.cache.Put2D(e.s[len(e.s)-1], id, gain)
		}

		return gain
	}
}

// validateInitialSolution rejects a seed set of the wrong size, with an
// out-of-range id, or with a repeated id, before it ever reaches the
// objective.
func validateInitialSolution(ids []int, n, k int) error {
	if len(ids) != k {
		return ErrBadInitialSolution
	}
	seen := make(map[int]bool, k)
	for _, id := range ids {
		if id < 0 || id >= n || seen[id] {
			return ErrBadInitialSolution
		}
		seen[id] = true
	}
	return nil
}

// budgetExceeded checks the time and evaluation budgets; true means the
// search must stop now with the current incumbent.
func (e *engine[T]) budgetExceeded() bool {
	if e.cfg.TimeLimit > 0 && time.Since(e.start) > e.cfg.TimeLimit {
		e.timedOut = true
		return true
	}
	if e.cfg.MaxSFEvaluations > 0 && e.sfEvals >= e.cfg.MaxSFEvaluations {
		e.timedOut = true
		return true
	}
	return false
}

// search is one frame's body: the bound phase followed by descend-or-
// exhaust, looping over siblings at this depth until the pool is empty,
// the incumbent already attains the structure's cap, or a budget is hit.
func (e *engine[T]) search(depth int, fCurrent T) {
	remaining := e.k - depth
	cm := e.cms[depth]

	for {
		if e.budgetExceeded() {
			return
		}
		if e.bestScore >= e.structure.MaxReachableScore() {
			return
		}
		if cm.Len() == 0 {
			return
		}

		if e.cfg.EnableUB1 {
			if maxGain, ok := cm.MaxGain(); ok {
				ub1 := fCurrent + T(remaining)*maxGain
				if ub1 <= e.bestScore {
					return
				}
			}
		}

		avail := remaining
		if cm.Len() < avail {
			avail = cm.Len()
		}

		// Cheap UB2 pre-pass: the sum of the top-avail gains over the
		// still-unrefined pool is itself a valid bound (every stale gain
		// upper-bounds its true marginal), so a prune here costs zero
		// score evaluations.
		if e.cfg.EnableUB2 {
			if fCurrent+cm.SumTopRBound(avail) <= e.bestScore {
				return
			}
		}

		cm.EnsureSortedPrefix(avail, e.refineFunc(fCurrent))
		if cm.SortedLen() < avail {
			avail = cm.SortedLen()
		}

		if e.cfg.EnableUB2 {
			ub2 := fCurrent + cm.GetPartialSum(0, avail)
			if ub2 <= e.bestScore {
				return
			}
		}

		if e.cfg.EnablePBF && avail > 0 {
			algo := pbf.DP
			if e.cfg.PBFAlgo == PBFBruteForce {
				algo = pbf.BruteForce
			}
			res := pbf.Solve(cm.SortedIDs(), cm.SortedGains(), e.cfg.PBFBlock, avail, algo, false)
			ubpbf := fCurrent + res.Value
			if ubpbf <= e.bestScore {
				return
			}
		}

		if cm.SortedLen() == 0 {
			return
		}

		top := cm.PopFront()
		e.s = append(e.s, top.ID)
		fChild := fCurrent + top.Gain

		if depth+1 == e.k {
			if e.budgetExceeded() {
				e.s = e.s[:len(e.s)-1]
				return
			}
			e.sfEvals++
			val := e.structure.EvaluateXD(e.s)
			if val > e.bestScore {
				e.bestScore = val
				e.bestSet = append(e.bestSet[:0], e.s...)
			}
		} else {
			e.cms[depth+1].FillFrom(cm)
			_ = e.structure.VisitNewDepth(e.s)
			e.cache.Clear()
			e.search(depth+1, fChild)
			_ = e.structure.ReturnFromLastDepth()
		}

		e.s = e.s[:len(e.s)-1]
	}
}

// greedySeed computes the initial incumbent: k rounds of argmax-marginal
// over the full ground set, ascending-id iteration so a strict ">"
// comparison alone realizes the smaller-id tie-break. A budget exhausted
// mid-seed stops the rounds; whatever partial set was built so far still
// stands as the best-so-far incumbent.
func (e *engine[T]) greedySeed(fEmpty T) (T, []int) {
	chosen := make([]int, 0, e.k)
	used := make([]bool, e.n)
	current := fEmpty

	for len(chosen) < e.k {
		bestGain := score.NegInf[T]()
		bestID := -1

		for c := 0; c < e.n; c++ {
			if used[c] {
				continue
			}
			if e.budgetExceeded() {
				return current, chosen
			}

			trial := append(append([]int(nil), chosen...), c)
			val := e.structure.EvaluateGeneral(trial)
			e.sfEvals++

			gain := val - current
			if gain > bestGain {
				bestGain = gain
				bestID = c
			}
		}

		chosen = append(chosen, bestID)
		used[bestID] = true
		current += bestGain
	}

	return current, chosen
}
