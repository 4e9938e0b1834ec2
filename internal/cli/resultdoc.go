package cli

import (
	"github.com/katalvlaran/submodk/ioformat"
	"github.com/katalvlaran/submodk/search"
)

// echoedConfig is the configuration object echoed back verbatim in the
// output, so a result file is self-describing.
type echoedConfig struct {
	Structure string  `json:"structure"`
	Score     string  `json:"score"`
	K         int     `json:"k"`
	Input     string  `json:"input"`
	Initial   string  `json:"initial,omitempty"`
	EnableUB1 bool    `json:"enable_ub1"`
	EnableUB2 bool    `json:"enable_ub2"`
	EnablePBF bool    `json:"enable_pbf"`
	PBFAlgo   string  `json:"pbf_algo"`
	PBFBlock  int     `json:"pbf_block"`
	TimeLimit float64 `json:"time_limit_seconds"`
	MaxEvals  int64   `json:"max_sf_evaluations"`
	Output    string  `json:"output"`
}

func currentEchoedConfig() echoedConfig {
	return echoedConfig{
		Structure: flagStructure,
		Score:     flagScore,
		K:         flagK,
		Input:     flagInput,
		Initial:   flagInitial,
		EnableUB1: flagEnableUB1,
		EnableUB2: flagEnableUB2,
		EnablePBF: flagEnablePBF,
		PBFAlgo:   flagPBFAlgo,
		PBFBlock:  flagPBFBlock,
		TimeLimit: flagTimeLimit,
		MaxEvals:  flagMaxEvals,
		Output:    flagOutput,
	}
}

func resultDocInt(r search.Result[int64], cfg search.Config) ioformat.ResultDoc {
	return ioformat.ResultDoc{
		Config:         currentEchoedConfig(),
		BestScore:      float64(r.BestScore),
		BestSet:        r.BestSet,
		K:              r.K,
		N:              r.N,
		SFEvaluations:  r.SFEvaluations,
		ElapsedSeconds: r.ElapsedSeconds,
		TimedOut:       r.TimedOut,
	}
}

func resultDocFloat(r search.Result[float64], cfg search.Config) ioformat.ResultDoc {
	return ioformat.ResultDoc{
		Config:         currentEchoedConfig(),
		BestScore:      r.BestScore,
		BestSet:        r.BestSet,
		K:              r.K,
		N:              r.N,
		SFEvaluations:  r.SFEvaluations,
		ElapsedSeconds: r.ElapsedSeconds,
		TimedOut:       r.TimedOut,
	}
}
