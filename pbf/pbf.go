// Package pbf implements the PBFSolver: the Partition-Block Fractional
// upper bound, the tightest (and most expensive) of the tree search's three
// cooperating bounds. Given a depth's sorted-accurate prefix of marginal
// gains, it partitions the whole prefix it is given into consecutive blocks
// of size L (the last block possibly short), precomputes each block's best-j-subset
// sums, and solves "choose exactly r selections total, distributed across
// blocks" as a bounded multi-choice knapsack — either by brute-force
// composition enumeration or by dynamic programming.
package pbf

import "github.com/katalvlaran/submodk/score"

// Algorithm selects which composition search PBFSolver.Solve uses.
type Algorithm int

const (
	// DP solves the knapsack recurrence; the default, efficient for any
	// number of blocks.
	DP Algorithm = iota
	// BruteForce enumerates every composition of r into n_blocks parts,
	// each in [0, L]. Simpler, but only practical for a small block count.
	BruteForce
)

// Result is the outcome of Solve: the bound value, and optionally (when
// reconstruction is requested) the chosen candidate ids per block.
type Result[T score.SF] struct {
	Value T

	// Chosen[b] holds the candidate ids selected from block b, in the
	// order they were included in the block's best-j-subset sum. Only
	// populated when Solve is called with reconstruct=true.
	Chosen [][]int
}

// block holds one block's precomputed best-j-subset sums and the ids that
// achieve each sum, in descending-gain order (the prefix is already sorted
// non-increasing, so the j largest gains in a block are simply its first j
// entries).
type block[T score.SF] struct {
	ids   []int
	gains []T
	// siS[j] = sum of the j largest gains in this block, j in [0, L].
	siS []T
}

func buildBlocks[T score.SF](ids []int, gains []T, blockSize int) []block[T] {
	n := len(gains)
	nBlocks := (n + blockSize - 1) / blockSize
	if nBlocks == 0 {
		return nil
	}

	blocks := make([]block[T], nBlocks)
	for b := 0; b < nBlocks; b++ {
		start := b * blockSize
		end := start + blockSize
		if end > n {
			end = n
		}

		bl := block[T]{
			ids:   ids[start:end],
			gains: gains[start:end],
			siS:   make([]T, end-start+1),
		}
		var running T
		for j := 1; j <= end-start; j++ {
			running += bl.gains[j-1]
			bl.siS[j] = running
		}
		blocks[b] = bl
	}

	return blocks
}

// Solve computes the partition-block fractional bound for selecting
// exactly r more candidates total, from the given sorted-accurate prefix
// (ids/gains, same length, gains non-increasing), using blocks of size
// blockSize and the requested algorithm. reconstruct controls whether
// Result.Chosen is populated (costs extra bookkeeping, skip when only the
// bound value is needed for pruning).
func Solve[T score.SF](ids []int, gains []T, blockSize, r int, algo Algorithm, reconstruct bool) Result[T] {
	if r <= 0 || len(gains) == 0 {
		return Result[T]{}
	}
	if blockSize <= 0 {
		blockSize = 1
	}

	blocks := buildBlocks(ids, gains, blockSize)

	switch algo {
	case BruteForce:
		return solveBruteForce(blocks, r, reconstruct)
	default:
		return solveDP(blocks, r, reconstruct)
	}
}

// solveDP runs the bounded-knapsack recurrence
// D[b][j] = max over l in [0, L] of siS[b][l] + D[b-1][j-l],
// remembering the chosen l per (b, j) for optional reconstruction.
func solveDP[T score.SF](blocks []block[T], r int, reconstruct bool) Result[T] {
	nBlocks := len(blocks)
	neg := score.NegInf[T]()

	// d[j] rolls forward over blocks; dChoice[b][j] = l chosen at block b
	// to reach total j, kept only when reconstruct is requested.
	d := make([]T, r+1)
	for j := 1; j <= r; j++ {
		d[j] = neg
	}

	var dChoice [][]int
	if reconstruct {
		dChoice = make([][]int, nBlocks)
	}

	for b := 0; b < nBlocks; b++ {
		maxL := len(blocks[b].gains)
		next := make([]T, r+1)
		choice := make([]int, r+1)
		for j := 0; j <= r; j++ {
			next[j] = neg
			best := -1
			lo, hi := 0, maxL
			if hi > j {
				hi = j
			}
			for l := lo; l <= hi; l++ {
				var prev T
				if j-l == 0 {
					prev = 0
				} else if d[j-l] == neg {
					continue
				} else {
					prev = d[j-l]
				}
				cand := blocks[b].siS[l] + prev
				if best == -1 || cand > next[j] {
					next[j] = cand
					best = l
				}
			}
			choice[j] = best
		}
		d = next
		if reconstruct {
			dChoice[b] = choice
		}
	}

	value := d[r]
	if value == neg {
		value = 0
	}

	result := Result[T]{Value: value}
	if reconstruct && value != 0 {
		result.Chosen = reconstructDP(blocks, dChoice, r)
	}

	return result
}

func reconstructDP[T score.SF](blocks []block[T], dChoice [][]int, r int) [][]int {
	nBlocks := len(blocks)
	chosen := make([][]int, nBlocks)
	remaining := r
	for b := nBlocks - 1; b >= 0; b-- {
		l := dChoice[b][remaining]
		if l < 0 {
			l = 0
		}
		chosen[b] = append([]int(nil), blocks[b].ids[:l]...)
		remaining -= l
	}
	return chosen
}

// solveBruteForce enumerates every composition of r into len(blocks) parts
// each in [0, len(block.gains)], keeping the best total. Faithful but
// exponential in the number of blocks; intended for small n_blocks.
func solveBruteForce[T score.SF](blocks []block[T], r int, reconstruct bool) Result[T] {
	nBlocks := len(blocks)
	best := score.NegInf[T]()
	var bestAlloc []int

	alloc := make([]int, nBlocks)
	var recurse func(b, remaining int)
	recurse = func(b, remaining int) {
		if b == nBlocks {
			if remaining == 0 {
				var sum T
				for i, l := range alloc {
					sum += blocks[i].siS[l]
				}
				if sum > best {
					best = sum
					if reconstruct {
						bestAlloc = append([]int(nil), alloc...)
					}
				}
			}
			return
		}

		maxL := len(blocks[b].gains)
		if maxL > remaining {
			maxL = remaining
		}
		for l := 0; l <= maxL; l++ {
			alloc[b] = l
			recurse(b+1, remaining-l)
		}
		alloc[b] = 0
	}
	recurse(0, r)

	if best == score.NegInf[T]() {
		return Result[T]{}
	}

	result := Result[T]{Value: best}
	if reconstruct && bestAlloc != nil {
		chosen := make([][]int, nBlocks)
		for b, l := range bestAlloc {
			chosen[b] = append([]int(nil), blocks[b].ids[:l]...)
		}
		result.Chosen = chosen
	}

	return result
}
