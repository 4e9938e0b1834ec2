package ioformat

import (
	"encoding/json"
	"fmt"
	"io"
)

// ResultDoc is the JSON output document: the search result plus the entire
// configuration echoed back, serialized with fixed precision.
type ResultDoc struct {
	RunID  string      `json:"run_id"`
	Config interface{} `json:"config"`

	BestScore float64 `json:"best_score"`
	BestSet   []int   `json:"best_set"`

	K int `json:"k"`
	N int `json:"n"`

	SFEvaluations  int64   `json:"sf_evaluations"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	TimedOut       bool    `json:"timed_out"`
}

// roundedFloat rounds v to 6 decimal places, the precision the output
// contract fixes for scores.
func roundedFloat(v float64) float64 {
	const scale = 1e6
	return float64(int64(v*scale+sign(v)*0.5)) / scale
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// WriteResult serializes doc as indented JSON to w, rounding BestScore to
// 6 decimals.
func WriteResult(w io.Writer, doc ResultDoc) error {
	doc.BestScore = roundedFloat(doc.BestScore)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("ioformat.WriteResult: %w", err)
	}

	return nil
}

// ErrorDoc is the single JSON error object every fatal error path emits.
type ErrorDoc struct {
	RunID string `json:"run_id"`
	Error string `json:"error"`
}

// WriteError serializes a fatal-error report to w.
func WriteError(w io.Writer, runID string, err error) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ErrorDoc{RunID: runID, Error: err.Error()})
}
