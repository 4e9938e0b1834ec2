// Package score declares the one capability contract the search engine
// depends on: Structure. The three objective plugins (score/negfarness,
// score/domset, score/kmedoid) each implement it; the search core never
// knows which one it is talking to.
package score

import "math"

// SF is the numeric constraint satisfied by a score function's value type.
// The two graph objectives count discrete quantities and use int64; the
// Euclidean k-medoid objective accumulates continuous distances and uses
// float64. Both support the total ordering, addition, subtraction, and
// negation the search core needs.
type SF interface {
	~int64 | ~float64
}

// Structure is the capability contract every objective satisfies: the
// search only ever calls these methods, never inspects objective internals.
//
// Monotonicity and submodularity of the evaluate family are assumed, not
// checked; a non-monotone Structure breaks the upper-bound soundness the
// search's pruning relies on.
type Structure[T SF] interface {
	// N reports the ground set cardinality.
	N() int

	// Finalize performs one-shot post-construction cleanup (sorting
	// adjacency, dropping duplicates, precomputing distance matrices).
	Finalize() error

	// InitializeHelpingStructures allocates per-depth scratch sized for a
	// search targeting sets of size k; called once before the search loop.
	InitializeHelpingStructures(k int) error

	// VisitNewDepth is called on descent to depth len(s); the structure may
	// update caches keyed by the new prefix s[:len(s)].
	VisitNewDepth(s []int) error

	// ReturnFromLastDepth is called on backtrack; it must undo exactly what
	// the matching VisitNewDepth did.
	ReturnFromLastDepth() error

	// EvaluateEmptySet returns f(∅).
	EvaluateEmptySet() T

	// Evaluate1D returns f(s) assuming the depth cursor is at len(s)-1,
	// i.e. exactly one element was appended since the last VisitNewDepth.
	Evaluate1D(s []int) T

	// Evaluate2D returns f(s) assuming the depth cursor is at len(s)-2.
	Evaluate2D(s []int) T

	// EvaluateXD returns f(s) assuming the depth cursor is at or below
	// len(s)-3; for a variable-length jump since the last visited depth.
	// The tree search also calls it for the final size-k set, where the
	// cursor is at len(s)-1.
	EvaluateXD(s []int) T

	// EvaluateGeneral returns f(s) for any s, independent of depth cursor
	// state. It is the only variant the tree search calls when refining an
	// arbitrary candidate's marginal gain against a cache miss.
	EvaluateGeneral(s []int) T

	// MaxReachableScore is an absolute cap on f for this instance, used to
	// short-circuit the search when the incumbent attains it (UB0).
	MaxReachableScore() T
}

// Reporter is an optional capability an objective can implement when its
// internally maximized score is not the most natural quantity to show a
// human. score/kmedoid implements it to present the positive sum of
// within-cluster distances instead of the internal negated value the
// search actually maximizes; score/negfarness and score/domset do not
// implement it, since their internal value is already the natural one.
type Reporter[T SF] interface {
	DisplayScore(internal T) T
}

// DisplayScore renders structure's internal score for output, applying
// Reporter when the objective implements it.
func DisplayScore[T SF](structure Structure[T], internal T) T {
	if r, ok := structure.(Reporter[T]); ok {
		return r.DisplayScore(internal)
	}

	return internal
}

// NegInf returns a sentinel that compares less than any value f can
// legitimately produce, used to seed an empty incumbent.
func NegInf[T SF]() T {
	var zero T
	switch any(zero).(type) {
	case int64:
		return T(math.MinInt64 / 2)
	case float64:
		return T(math.Inf(-1))
	default:
		return zero
	}
}

// PosInf returns a sentinel that compares greater than any value f can
// legitimately produce, used as the "not yet computed" upper bound on a
// marginal gain: an entry carrying it must be refined to its true marginal
// before it can ever win a comparison against a refined entry.
func PosInf[T SF]() T {
	var zero T
	switch any(zero).(type) {
	case int64:
		return T(math.MaxInt64 / 2)
	case float64:
		return T(math.Inf(1))
	default:
		return zero
	}
}
