package candidate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/submodk/candidate"
)

func TestManager_FillCandidates_MaxGain(t *testing.T) {
	t.Parallel()

	m := candidate.New[int64]()
	m.FillCandidates(5)
	require.Equal(t, 5, m.Len())

	gains := map[int]int64{0: 3, 1: 9, 2: 1, 3: 9, 4: 4}
	refine := func(id int) int64 { return gains[id] }

	m.EnsureSortedPrefix(1, refine)
	top := m.PopFront()
	require.Equal(t, int64(9), top.Gain)
	// tie between 1 and 3: smaller id wins
	require.Equal(t, 1, top.ID)
}

func TestManager_EnsureSortedPrefix_PartialSum(t *testing.T) {
	t.Parallel()

	m := candidate.New[int64]()
	m.FillCandidates(4)
	gains := map[int]int64{0: 4, 1: 3, 2: 2, 3: 1}
	refine := func(id int) int64 { return gains[id] }

	m.EnsureSortedPrefix(4, refine)
	require.Equal(t, 4, m.SortedLen())
	require.Equal(t, int64(10), m.GetPartialSum(0, 4))
	require.Equal(t, int64(4), m.GetPartialSum(0, 1))
	require.Equal(t, []int64{4, 3, 2, 1}, m.SortedGains())
	require.Equal(t, []int{0, 1, 2, 3}, m.SortedIDs())
}

func TestManager_FillFrom_CarriesRemainingPool(t *testing.T) {
	t.Parallel()

	parent := candidate.New[int64]()
	parent.FillCandidates(3)
	refine := func(id int) int64 { return int64(id) }
	parent.EnsureSortedPrefix(1, refine)
	parent.PopFront()

	child := candidate.New[int64]()
	child.FillFrom(parent)
	require.Equal(t, parent.Len(), child.Len())
}

func TestManager_SubHeap_EvictsMinimum(t *testing.T) {
	t.Parallel()

	m := candidate.New[int64]()
	m.SubHeapAdd(2, 0, 5)
	m.SubHeapAdd(2, 1, 3)
	require.Equal(t, int64(8), m.SubHeapSum())

	// capacity is full; a bigger gain evicts the current minimum (3)
	m.SubHeapAdd(2, 2, 7)
	require.Equal(t, int64(12), m.SubHeapSum())

	// a smaller gain than the current minimum is rejected
	m.SubHeapAdd(2, 3, 1)
	require.Equal(t, int64(12), m.SubHeapSum())
}

func TestManager_SumTopRBound_TightensUnderRefinement(t *testing.T) {
	t.Parallel()

	parent := candidate.New[int64]()
	parent.FillCandidates(4)
	stale := map[int]int64{0: 10, 1: 8, 2: 6, 3: 4}
	parent.EnsureSortedPrefix(4, func(id int) int64 { return stale[id] })

	// the child inherits the parent's gains as stale upper bounds
	child := candidate.New[int64]()
	child.FillFrom(parent)
	require.Equal(t, int64(18), child.SumTopRBound(2))

	refined := map[int]int64{0: 2, 1: 7, 2: 5, 3: 3}
	child.EnsureSortedPrefix(2, func(id int) int64 { return refined[id] })

	require.Equal(t, int64(12), child.GetPartialSum(0, 2))
	// refining ids 0 and 1 rewrote their tracked sub-heap entries in place
	require.Equal(t, int64(9), child.SubHeapSum())
}

func TestManager_GetSumLastRSorted(t *testing.T) {
	t.Parallel()

	m := candidate.New[int64]()
	m.FillCandidates(3)
	gains := map[int]int64{0: 5, 1: 3, 2: 1}
	m.EnsureSortedPrefix(3, func(id int) int64 { return gains[id] })

	require.Equal(t, int64(4), m.GetSumLastRSorted(2))
	require.Equal(t, int64(0), m.GetSumLastRSorted(0))
	require.Equal(t, int64(9), m.GetSumLastRSorted(3))
}
