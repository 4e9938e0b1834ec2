// Package sicache implements the ScoreImprovementCache: memoization of
// marginal-gain evaluations keyed by the ground elements involved, so the
// tree search avoids recomputing a ScoreStructure call it has already paid
// for at a different point in the search tree.
//
// Two independent tables are kept:
//   - 1-D: f(S ∪ {c}) - f(S), keyed by the *order-independent* combination
//     of S's members with c (adding c to S means the same thing regardless
//     of the order S's other members were inserted in).
//   - 2-D: the joint marginal of adding the ordered pair (c1, c2), keyed
//     *order-dependently* — (c1, c2) and (c2, c1) are deliberately distinct
//     cache entries. "Gain of c2 added right after c1" can differ from the
//     reverse, and canonicalizing the pair would silently change results.
//
// Hashing is an FNV-1a-style fold: each element's integer id is mixed into
// a running 64-bit hash. The 1-D hash XORs every member's mixed
// contribution (order-independent); the 2-D hash mixes c1 then c2
// sequentially through the *same* running state (order-dependent, since
// mixing c2 first changes the seed state c1 is folded against next).
package sicache

import (
	"sort"

	"github.com/katalvlaran/submodk/score"
)

const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211
)

// mix folds one integer into a running FNV-1a-style hash state.
func mix(h uint64, v int) uint64 {
	b := uint64(v)
	for i := 0; i < 8; i++ {
		h ^= (b >> (8 * i)) & 0xff
		h *= fnvPrime
	}
	return h
}

// entry1D is a stored 1-D cache line: the exact key (for collision
// detection) and the cached gain.
type entry1D[T score.SF] struct {
	key  []int
	gain T
}

type entry2D[T score.SF] struct {
	c1, c2 int
	gain   T
}

// Cache is the ScoreImprovementCache over score value type T.
type Cache[T score.SF] struct {
	table1D map[uint64]entry1D[T]
	table2D map[uint64]entry2D[T]

	hits1D, misses1D int
	hits2D, misses2D int
}

// New returns an empty Cache.
func New[T score.SF]() *Cache[T] {
	return &Cache[T]{
		table1D: make(map[uint64]entry1D[T]),
		table2D: make(map[uint64]entry2D[T]),
	}
}

// Clear empties both tables, e.g. between independent search runs sharing a
// Cache instance.
func (c *Cache[T]) Clear() {
	c.table1D = make(map[uint64]entry1D[T])
	c.table2D = make(map[uint64]entry2D[T])
	c.hits1D, c.misses1D, c.hits2D, c.misses2D = 0, 0, 0, 0
}

// hash1D computes the order-independent key for S ∪ {c}: each element's
// mixed single-value hash, XORed together.
func hash1D(s []int, c int) uint64 {
	var h uint64
	for _, v := range s {
		h ^= mix(fnvOffset, v)
	}
	h ^= mix(fnvOffset, c)
	return h
}

func key1D(s []int, c int) []int {
	key := make([]int, len(s)+1)
	copy(key, s)
	key[len(s)] = c
	sort.Ints(key)
	return key
}

func sameKey(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Get1D looks up the memoized marginal gain of adding c to s. ok is false
// on a miss or a hash collision against a different key (the caller must
// recompute either way).
func (c *Cache[T]) Get1D(s []int, cand int) (gain T, ok bool) {
	h := hash1D(s, cand)
	e, found := c.table1D[h]
	if !found || !sameKey(e.key, key1D(s, cand)) {
		c.misses1D++
		var zero T
		return zero, false
	}
	c.hits1D++
	return e.gain, true
}

// Put1D memoizes the marginal gain of adding c to s.
func (c *Cache[T]) Put1D(s []int, cand int, gain T) {
	h := hash1D(s, cand)
	c.table1D[h] = entry1D[T]{key: key1D(s, cand), gain: gain}
}

// hash2D computes the order-dependent key for the ordered pair (c1, c2).
func hash2D(c1, c2 int) uint64 {
	h := mix(fnvOffset, c1)
	h = mix(h, c2)
	return h
}

// Get2D looks up the memoized joint marginal gain of the ordered pair
// (c1, c2). Note (c1, c2) and (c2, c1) are distinct keys by design.
func (c *Cache[T]) Get2D(c1, c2 int) (gain T, ok bool) {
	h := hash2D(c1, c2)
	e, found := c.table2D[h]
	if !found || e.c1 != c1 || e.c2 != c2 {
		c.misses2D++
		var zero T
		return zero, false
	}
	c.hits2D++
	return e.gain, true
}

// Put2D memoizes the joint marginal gain of the ordered pair (c1, c2).
func (c *Cache[T]) Put2D(c1, c2 int, gain T) {
	h := hash2D(c1, c2)
	c.table2D[h] = entry2D[T]{c1: c1, c2: c2, gain: gain}
}

// Stats reports cumulative hit/miss counts for both tables. Outside the
// package tests nothing reads them; the search does not log them.
type Stats struct {
	Hits1D, Misses1D int
	Hits2D, Misses2D int
}

// Stats returns the current cumulative hit/miss counters.
func (c *Cache[T]) Stats() Stats {
	return Stats{
		Hits1D: c.hits1D, Misses1D: c.misses1D,
		Hits2D: c.hits2D, Misses2D: c.misses2D,
	}
}
