// Package candidate implements the per-depth candidate bookkeeping the tree
// search relies on: a lazily-refined max-heap of marginal gains feeding a
// sorted-accurate prefix with O(1) partial-sum queries, plus a bounded
// min-heap for top-r extraction (SUB_heap).
//
// The heap region and the sorted-accurate prefix live in two separate
// slices rather than sharing one array's head and tail. That costs a copy
// per pop but keeps each region's invariant independent and easy to check.
package candidate

import (
	"container/heap"

	"github.com/katalvlaran/submodk/score"
)

// Entry is a CandidateEntry: a ground element id, its current marginal
// gain, and whether that gain is the exact marginal (true) or a valid
// upper bound on it (false).
type Entry[T score.SF] struct {
	ID       int
	Gain     T
	Accurate bool
}

// maxHeap orders Entry values by gain descending, tie-broken by the
// smaller id so equal-gain candidates always pop in the same order and
// runs stay reproducible.
type maxHeap[T score.SF] []Entry[T]

func (h maxHeap[T]) Len() int { return len(h) }
func (h maxHeap[T]) Less(i, j int) bool {
	if h[i].Gain != h[j].Gain {
		return h[i].Gain > h[j].Gain
	}
	return h[i].ID < h[j].ID
}
func (h maxHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *maxHeap[T]) Push(x any)   { *h = append(*h, x.(Entry[T])) }
func (h *maxHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// minHeap is the dual ordering used by the fixed-capacity SUB_heap (keeps
// the r largest gains seen by evicting its current minimum).
type minHeap[T score.SF] []Entry[T]

func (h minHeap[T]) Len() int { return len(h) }
func (h minHeap[T]) Less(i, j int) bool {
	if h[i].Gain != h[j].Gain {
		return h[i].Gain < h[j].Gain
	}
	return h[i].ID > h[j].ID
}
func (h minHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *minHeap[T]) Push(x any)   { *h = append(*h, x.(Entry[T])) }
func (h *minHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Manager is one depth level's candidate bookkeeping; the search owns one
// per depth in [0, k].
type Manager[T score.SF] struct {
	heap   maxHeap[T] // unrefined/loose-bound region
	sorted []Entry[T] // sorted-accurate prefix, non-increasing by Gain
	csum   []T        // csum[i] = sum of sorted[:i].Gain; len(csum) == len(sorted)+1

	subHeap minHeap[T] // SUB_heap: fixed-capacity min-heap of the r largest gains seen
	subCap  int
	subSum  T
}

// New returns an empty Manager ready for FillCandidates or FillFrom.
func New[T score.SF]() *Manager[T] {
	return &Manager[T]{csum: []T{0}}
}

// Reset clears all regions so the Manager can be reused for a new depth
// visit without reallocating its backing arrays.
func (m *Manager[T]) Reset() {
	m.heap = m.heap[:0]
	m.sorted = m.sorted[:0]
	m.csum = m.csum[:1]
	m.csum[0] = 0
	m.subHeap = m.subHeap[:0]
	var zero T
	m.subSum = zero
}

// FillCandidates populates the manager with ground elements [0, n) as
// inaccurate heap entries — the depth-0 entry point, where there is no
// parent manager to copy from. Gains start at the PosInf sentinel, not
// zero: an inaccurate gain must upper-bound the true marginal for the
// lazy-refinement loop to be sound, and with no parent there is no cheaper
// valid bound available yet.
func (m *Manager[T]) FillCandidates(n int) {
	m.Reset()
	m.heap = make(maxHeap[T], n)
	inf := score.PosInf[T]()
	for i := 0; i < n; i++ {
		m.heap[i] = Entry[T]{ID: i, Gain: inf, Accurate: false}
	}
	heap.Init(&m.heap)
}

// FillFrom copies the parent's still-available candidates (its entire
// remaining pool: whatever is left in its heap plus its sorted-accurate
// prefix, excluding anything the parent has already committed to S) into
// this manager as fresh, inaccurate heap entries.
//
// Reusing the parent's last-known gain as the child's initial bound is
// sound by submodularity (a marginal gain can only shrink as the
// conditioning set grows) and costs zero additional score evaluations.
func (m *Manager[T]) FillFrom(parent *Manager[T]) {
	total := len(parent.heap) + len(parent.sorted)
	m.Reset()
	m.heap = make(maxHeap[T], 0, total)
	for _, e := range parent.heap {
		m.heap = append(m.heap, Entry[T]{ID: e.ID, Gain: e.Gain, Accurate: false})
	}
	for _, e := range parent.sorted {
		m.heap = append(m.heap, Entry[T]{ID: e.ID, Gain: e.Gain, Accurate: false})
	}
	heap.Init(&m.heap)
}

// Len reports how many candidates remain across both regions.
func (m *Manager[T]) Len() int {
	return len(m.heap) + len(m.sorted)
}

// MaxGain returns the largest gain among all remaining candidates (heap
// union sorted prefix) — UB1's "max gain in heap". ok is false when no
// candidates remain.
func (m *Manager[T]) MaxGain() (gain T, ok bool) {
	if len(m.sorted) > 0 {
		return m.sorted[0].Gain, true
	}
	if len(m.heap) > 0 {
		return m.heap[0].Gain, true
	}
	var zero T
	return zero, false
}

// EnsureSortedPrefix guarantees at least min(count, m.Len()) entries sit in
// the sorted-accurate prefix, refining additional heap entries via refine
// (the classic lazy-greedy loop: peek the max, refine it if stale, re-sift,
// repeat until the peeked root is already accurate — then it is globally
// the best remaining candidate and is moved into the sorted prefix).
//
// refine(id) must return the true marginal gain of id at the current S.
func (m *Manager[T]) EnsureSortedPrefix(count int, refine func(id int) T) {
	for len(m.sorted) < count && len(m.heap) > 0 {
		for {
			root := &m.heap[0]
			if root.Accurate {
				break
			}
			root.Gain = refine(root.ID)
			root.Accurate = true
			if idx := m.SubHeapFind(root.ID); idx >= 0 {
				m.SubHeapUpdate(idx, root.Gain)
			}
			heap.Fix(&m.heap, 0)
		}
		top := heap.Pop(&m.heap).(Entry[T])
		m.appendSorted(top)
	}
}

func (m *Manager[T]) appendSorted(e Entry[T]) {
	m.sorted = append(m.sorted, e)
	m.csum = append(m.csum, m.csum[len(m.csum)-1]+e.Gain)
}

// GetPartialSum returns the sum of count gains starting at index start
// within the sorted-accurate prefix (the partial-sum bound's raw
// ingredient). Caller must ensure start+count <= len(sorted) (typically via
// EnsureSortedPrefix first).
func (m *Manager[T]) GetPartialSum(start, count int) T {
	return m.csum[start+count] - m.csum[start]
}

// SortedLen reports how many entries currently sit in the sorted-accurate
// prefix.
func (m *Manager[T]) SortedLen() int { return len(m.sorted) }

// SortedGains exposes the current sorted-accurate prefix's gains in
// non-increasing order, for PBFSolver block partitioning.
func (m *Manager[T]) SortedGains() []T {
	gains := make([]T, len(m.sorted))
	for i, e := range m.sorted {
		gains[i] = e.Gain
	}
	return gains
}

// SortedIDs mirrors SortedGains but returns candidate ids.
func (m *Manager[T]) SortedIDs() []int {
	ids := make([]int, len(m.sorted))
	for i, e := range m.sorted {
		ids[i] = e.ID
	}
	return ids
}

// PopFront removes and returns the single best remaining candidate; the
// caller must have called EnsureSortedPrefix(>=1, ...) first. This is the
// "descend" commit: the candidate leaves the pool entirely (place_top_
// candidate_heap_away semantics), never to be reconsidered at this depth.
func (m *Manager[T]) PopFront() Entry[T] {
	top := m.sorted[0]
	m.sorted = m.sorted[1:]
	m.csum = m.csum[1:]
	return top
}

// GetSumLastRSorted returns the sum of the smallest r gains currently held
// in the sorted-accurate prefix.
func (m *Manager[T]) GetSumLastRSorted(r int) T {
	n := len(m.sorted)
	if r > n {
		r = n
	}
	return m.csum[n] - m.csum[n-r]
}

// SubHeapAdd incorporates (id, gain) into the fixed-capacity r-largest
// min-heap, evicting the current minimum when already at capacity and the
// new gain exceeds it.
func (m *Manager[T]) SubHeapAdd(cap int, id int, gain T) {
	m.subCap = cap
	if len(m.subHeap) < cap {
		heap.Push(&m.subHeap, Entry[T]{ID: id, Gain: gain, Accurate: true})
		m.subSum += gain
		return
	}
	if cap == 0 {
		return
	}
	if gain > m.subHeap[0].Gain {
		m.subSum += gain - m.subHeap[0].Gain
		m.subHeap[0] = Entry[T]{ID: id, Gain: gain, Accurate: true}
		heap.Fix(&m.subHeap, 0)
	}
}

// SubHeapUpdate refines the gain of the entry at subHeap index idx,
// re-establishing heap order.
func (m *Manager[T]) SubHeapUpdate(idx int, newGain T) {
	m.subSum += newGain - m.subHeap[idx].Gain
	m.subHeap[idx].Gain = newGain
	heap.Fix(&m.subHeap, idx)
}

// SubHeapFind linearly scans the sub-heap for id, returning its index or
// -1. A linear scan is fine here: r is bounded by k, which stays small in
// this exact-search regime.
func (m *Manager[T]) SubHeapFind(id int) int {
	for i, e := range m.subHeap {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// SubHeapSum returns the sum of gains currently held in the SUB_heap.
func (m *Manager[T]) SubHeapSum() T { return m.subSum }

// SumTopRBound rebuilds the sub-heap from every remaining candidate (both
// regions) and returns the sum of the r largest gains held anywhere in the
// manager. Inaccurate gains upper-bound their true marginals, so the result
// bounds the best attainable sum of r true marginals without spending a
// single score evaluation; refinements applied afterwards through
// EnsureSortedPrefix tighten the tracked sum in place.
func (m *Manager[T]) SumTopRBound(r int) T {
	m.subHeap = m.subHeap[:0]
	var zero T
	m.subSum = zero
	for _, e := range m.sorted {
		m.SubHeapAdd(r, e.ID, e.Gain)
	}
	for _, e := range m.heap {
		m.SubHeapAdd(r, e.ID, e.Gain)
	}

	return m.subSum
}
