// Package genrandom generates reproducible random problem instances: graphs
// for the negative-group-farness and partial-dominating-set objectives,
// and point clouds for the Euclidean k-medoid objective. Every generator
// takes an explicit seed; there is no global mutable RNG state.
//
// Graph generation composes builder.RandomSparse for the Erdős–Rényi edge
// sampling (with builder.WithSeed's RNG injection) and algorithms.BFS for
// connected-component discovery, stitching any resulting components into
// one connected graph so every generated instance is usable by the
// distance-based objectives.
package genrandom

import (
	"strconv"

	"github.com/katalvlaran/submodk/algorithms"
	"github.com/katalvlaran/submodk/builder"
	"github.com/katalvlaran/submodk/core"
	"github.com/katalvlaran/submodk/graphmodel"
)

// Graph returns a random connected, undirected, simple graph over n ground
// elements: builder.RandomSparse(n, p) samples edges independently with
// probability p, then any disconnected components are bridged using
// algorithms.BFS-discovered component membership, guaranteeing a single
// connected component. seed makes the result reproducible.
func Graph(n int, p float64, seed int64) (*graphmodel.Graph, error) {
	cg, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(false)},
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomSparse(n, p),
	)
	if err != nil {
		return nil, err
	}

	if err := connect(cg, n); err != nil {
		return nil, err
	}

	out, err := graphmodel.New(n)
	if err != nil {
		return nil, err
	}

	seen := make(map[[2]int]bool)
	for _, e := range cg.Edges() {
		a, err := strconv.Atoi(e.From)
		if err != nil {
			continue
		}
		b, err := strconv.Atoi(e.To)
		if err != nil {
			continue
		}
		if a == b {
			continue
		}
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if seen[key] {
			continue
		}
		seen[key] = true

		if err := out.AddEdge(a, b); err != nil {
			return nil, err
		}
	}

	if err := out.Finalize(); err != nil {
		return nil, err
	}

	return out, nil
}

// connect discovers cg's connected components via repeated algorithms.BFS
// runs and adds one bridging edge from the first component's representative
// to each other component's representative, leaving one connected
// component. Each component's representative is its lowest-numbered
// vertex (the BFS start), so the bridging edges are the same for the same
// sampled graph.
func connect(cg *core.Graph, n int) error {
	if n <= 1 {
		return nil
	}

	visited := make(map[string]bool, n)
	var reps []string

	for i := 0; i < n; i++ {
		id := strconv.Itoa(i)
		if visited[id] {
			continue
		}

		res, err := algorithms.BFS(cg, id, nil)
		if err != nil {
			return err
		}

		for _, v := range res.Order {
			visited[v.ID] = true
		}
		reps = append(reps, id)
	}

	for i := 1; i < len(reps); i++ {
		if _, err := cg.AddEdge(reps[0], reps[i], 0); err != nil {
			return err
		}
	}

	return nil
}
