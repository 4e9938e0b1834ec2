package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/submodk/pointsmodel"
)

// ParseDataPoints reads the data points file format from r: each
// non-empty, non-`%`-prefixed line is one point as whitespace-separated
// decimal numbers. Dimensionality is inferred from the first row and
// validated against every later row.
func ParseDataPoints(r io.Reader) (*pointsmodel.Points, error) {
	var rows [][]float64

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		fields := strings.Fields(line)
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("ioformat.ParseDataPoints: line %d: %w", lineNo, ErrMalformedLine)
			}
			row[i] = v
		}

		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("ioformat.ParseDataPoints: line %d: %w", lineNo, ErrDimMismatch)
		}

		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat.ParseDataPoints: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoPoints
	}

	p, err := pointsmodel.New(rows)
	if err != nil {
		return nil, fmt.Errorf("ioformat.ParseDataPoints: %w", err)
	}
	if err := p.Finalize(); err != nil {
		return nil, fmt.Errorf("ioformat.ParseDataPoints: %w", err)
	}

	return p, nil
}
