// Package submodk is your workbench for exact submodular maximization under a
// cardinality constraint.
//
// 🚀 What is submodk?
//
//	A single-threaded, deterministic branch-and-bound searcher that finds the
//	provably best size-k subset for a monotone submodular objective:
//
//	  • Candidate bookkeeping: candidate.Manager keeps marginal gains sorted,
//	    heaped, and prefix-summed so bound checks stay cheap at every depth.
//	  • Three cooperating upper bounds: a greedy partial-sum bound, a
//	    best-marginal-gains bound, and a partition-block fractional bound
//	    (pbf.Solve) that runs a small composition/knapsack solve per node.
//	  • Score plugins: score/negfarness, score/domset (graph objectives built
//	    on graphmodel's all-pairs shortest paths) and score/kmedoid (a
//	    point-cloud objective built on pointsmodel's distance matrix).
//
// ✨ Why this layout?
//
//   - Exact, not approximate — the tree search only prunes branches it can
//     prove are dominated; the reported optimum is exact.
//   - Pluggable objectives — score.Structure is the one capability interface
//     every objective implements; new objectives slot in without touching
//     search.
//   - Pure Go — no cgo; core/matrix/builder are adapted from the lvlath
//     graph library for the graph/matrix plumbing.
//
// Under the hood:
//
//	core/, matrix/, builder/ — adapted graph/matrix primitives
//	graphmodel/, pointsmodel/ — domain-specific views over those primitives
//	candidate/, sicache/, pbf/ — search bookkeeping
//	search/                   — the iterative branch-and-bound driver
//	score/, score/*/          — the objective contract and its three plugins
//	bruteforce/               — exhaustive reference search, for tests only
//	genrandom/, ioformat/     — instance generation and file I/O
//	internal/applog/, internal/cli/, cmd/submodk/ — the command-line tool
//
//	go get github.com/katalvlaran/submodk
package submodk
