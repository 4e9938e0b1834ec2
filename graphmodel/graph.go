// Package graphmodel adapts the core.Graph and matrix packages into the
// ground-set view the graph objectives (score/negfarness, score/domset)
// need: ground element i is vertex i, neighbor lookups and all-pairs
// shortest-path distances are available in O(1)/O(n) after a single
// Finalize call.
//
// Ground elements are addressed by plain int, matching
// score.Structure[T]'s []int contract. Internally each element i is stored
// as a core.Graph vertex whose string id is i zero-padded to a fixed width,
// e.g. "000", "001", ..., "099" for a 100-vertex graph. The padding makes the
// lexicographic vertex ordering (used by matrix.NewAdjacencyMatrix and
// matrix.BuildMetricClosure to assign matrix rows/cols) coincide exactly
// with the numeric index, so no secondary id<->index translation table is
// needed anywhere outside this package.
package graphmodel

import (
	"fmt"

	"github.com/katalvlaran/submodk/core"
	"github.com/katalvlaran/submodk/matrix"
)

// Graph is a fixed-size undirected simple graph over ground elements
// [0, n). Edges are added before Finalize; Distance/Neighbors are only
// valid after it.
type Graph struct {
	n        int
	width    int
	g        *core.Graph
	dist     *matrix.AdjacencyMatrix // metric closure, valid after Finalize
	adj      *matrix.AdjacencyMatrix // binary adjacency, valid after Finalize
	neighbor [][]int                 // neighbor[i] = sorted neighbor indices of i
	final    bool
}

// New allocates a Graph over n ground elements with no edges yet.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	width := len(fmt.Sprintf("%d", n))
	if width < 1 {
		width = 1
	}

	g := core.NewGraph(core.WithDirected(false), core.WithWeighted())
	for i := 0; i < n; i++ {
		if err := g.AddVertex(vertexID(i, width)); err != nil {
			return nil, fmt.Errorf("graphmodel.New: %w", err)
		}
	}

	return &Graph{n: n, width: width, g: g}, nil
}

func vertexID(i, width int) string {
	return fmt.Sprintf("%0*d", width, i)
}

// N reports the ground-set cardinality.
func (gr *Graph) N() int { return gr.n }

// AddEdge adds an undirected edge between ground elements a and b. Must be
// called before Finalize.
func (gr *Graph) AddEdge(a, b int) error {
	if a < 0 || a >= gr.n || b < 0 || b >= gr.n {
		return ErrVertexOutOfRange
	}

	_, err := gr.g.AddEdge(vertexID(a, gr.width), vertexID(b, gr.width), 1)
	if err != nil {
		return fmt.Errorf("graphmodel.AddEdge(%d,%d): %w", a, b, err)
	}

	return nil
}

// Finalize builds the dense adjacency matrix and all-pairs shortest-path
// metric closure, and caches each vertex's neighbor list. It must be called
// exactly once, after all edges are added and before Distance/Neighbors are
// used.
func (gr *Graph) Finalize() error {
	adjOpts := matrix.NewMatrixOptions(
		matrix.WithUndirected(),
		matrix.WithUnweighted(),
		matrix.WithDisallowMulti(),
	)
	adj, err := matrix.NewAdjacencyMatrix(gr.g, adjOpts)
	if err != nil {
		return fmt.Errorf("graphmodel.Finalize: adjacency: %w", err)
	}

	distOpts := matrix.NewMatrixOptions(
		matrix.WithUndirected(),
		matrix.WithUnweighted(),
		matrix.WithDisallowMulti(),
	)
	dist, err := matrix.BuildMetricClosure(gr.g, distOpts)
	if err != nil {
		return fmt.Errorf("graphmodel.Finalize: metric closure: %w", err)
	}

	neighbor := make([][]int, gr.n)
	for i := 0; i < gr.n; i++ {
		ids, err := gr.g.NeighborIDs(vertexID(i, gr.width))
		if err != nil {
			return fmt.Errorf("graphmodel.Finalize: neighbors of %d: %w", i, err)
		}
		row := make([]int, 0, len(ids))
		for _, id := range ids {
			row = append(row, indexOf(id))
		}
		neighbor[i] = row
	}

	gr.adj = adj
	gr.dist = dist
	gr.neighbor = neighbor
	gr.final = true

	return nil
}

// indexOf parses a zero-padded vertex id back into its integer index.
func indexOf(id string) int {
	n := 0
	for _, c := range id {
		n = n*10 + int(c-'0')
	}
	return n
}

// Distance returns the shortest-path distance between ground elements i and
// j, or +Inf if they are not connected. Only valid after Finalize.
func (gr *Graph) Distance(i, j int) float64 {
	v, _ := gr.dist.Mat.At(i, j)
	return v
}

// Neighbors returns the sorted list of ground elements adjacent to i.
func (gr *Graph) Neighbors(i int) []int {
	return gr.neighbor[i]
}

// Finalized reports whether Finalize has run.
func (gr *Graph) Finalized() bool { return gr.final }
