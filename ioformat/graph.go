// Package ioformat implements the instance-file parsers and the JSON
// result writer. The input formats are deliberately lenient: `%`-prefixed
// and blank lines are comments, everything else is whitespace-separated
// tokens. Parsing failures surface as Go errors; nothing in this package
// exits the process.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/submodk/graphmodel"
)

// ParseGraph reads the graph file format from r: each non-empty,
// non-`%`-prefixed line holds two whitespace-separated 0-indexed vertex
// ids; n is inferred as max(id)+1. Undirected — AddEdge(a, b) implies both
// directions, and duplicate edges collapse (graphmodel itself is simple).
func ParseGraph(r io.Reader) (*graphmodel.Graph, error) {
	type rawEdge struct{ a, b int }

	var edges []rawEdge
	maxID := -1

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("ioformat.ParseGraph: line %d: %w", lineNo, ErrMalformedLine)
		}

		a, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("ioformat.ParseGraph: line %d: %w", lineNo, ErrMalformedLine)
		}
		b, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("ioformat.ParseGraph: line %d: %w", lineNo, ErrMalformedLine)
		}

		edges = append(edges, rawEdge{a, b})
		if a > maxID {
			maxID = a
		}
		if b > maxID {
			maxID = b
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat.ParseGraph: %w", err)
	}
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}

	n := maxID + 1
	g, err := graphmodel.New(n)
	if err != nil {
		return nil, fmt.Errorf("ioformat.ParseGraph: %w", err)
	}

	seen := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		key := [2]int{e.a, e.b}
		if e.a > e.b {
			key = [2]int{e.b, e.a}
		}
		if seen[key] {
			continue
		}
		seen[key] = true

		if err := g.AddEdge(e.a, e.b); err != nil {
			return nil, fmt.Errorf("ioformat.ParseGraph: %w", err)
		}
	}

	if err := g.Finalize(); err != nil {
		return nil, fmt.Errorf("ioformat.ParseGraph: %w", err)
	}

	return g, nil
}
