// Package builder provides internal configuration types and functional options
// for graph constructors. It centralizes common settings such as random number
// generator, vertex ID scheme, and edge weight distribution to keep builder
// implementations DRY and consistent.
//
// The key type is BuilderOption, a function that mutates a builderConfig.
// builderConfig holds three fields:
//   - rng:     *rand.Rand source for randomness (nil → deterministic).
//   - idFn:    IDFn to produce vertex identifiers from integer indices.
//   - weightFn: WeightFn to produce edge weights given an RNG.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of BuilderOption in order. Later options override earlier ones.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra space.
package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a graph constructor.
// It mutates the builderConfig before graph construction begins.
//
// Option constructors that take a function or RNG (WithIDScheme, WithWeightFn,
// WithRand) panic on nil inputs; the returned options never panic when applied.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the configurable parameters for graph builders:
//   - rng:     source of randomness (nil means deterministic).
//   - idFn:    function mapping index→vertex ID (IDFn).
//   - weightFn: function mapping rng→edge weight (WeightFn).
//
// builderConfig is not safe for concurrent mutation; each builder invocation
// should create its own config via newBuilderConfig.
type builderConfig struct {
	rng      *rand.Rand // optional RNG; nil means deterministic behavior
	idFn     IDFn       // function to generate vertex IDs from indices
	weightFn WeightFn   // function to generate edge weights
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. If opts is empty, returns
// defaults: nil RNG, DefaultIDFn, DefaultWeightFn.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	// Initialize defaults
	cfg := &builderConfig{
		rng:      nil,             // no RNG → deterministic ID and weight functions
		idFn:     DefaultIDFn,     // decimal IDs "0","1",…
		weightFn: DefaultWeightFn, // constant DefaultEdgeWeight
	}

	// Apply each option in order; later options override earlier ones
	var opt BuilderOption
	for _, opt = range opts {
		opt(cfg)
	}

	return cfg
}

// WithIDScheme injects a custom IDFn into the builderConfig.
// Panics on a nil idFn: a nil scheme is a programming error, caught at
// option-construction time rather than surfacing as a nil call later.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(idFn IDFn) BuilderOption {
	if idFn == nil {
		panic("builder: WithIDScheme(nil) is not allowed")
	}
	return func(cfg *builderConfig) {
		cfg.idFn = idFn
	}
}

// WithWeightFn injects a custom WeightFn into the builderConfig.
// Panics on a nil wfn (fail-fast, same policy as WithIDScheme).
// Complexity: O(1) time, O(1) space.
func WithWeightFn(wfn WeightFn) BuilderOption {
	if wfn == nil {
		panic("builder: WithWeightFn(nil) is not allowed")
	}
	return func(cfg *builderConfig) {
		cfg.weightFn = wfn
	}
}

// WithRand sets an explicit *rand.Rand source for randomness.
// Panics on a nil rng (fail-fast, same policy as WithIDScheme).
// Complexity: O(1) time, O(1) space.
func WithRand(rng *rand.Rand) BuilderOption {
	if rng == nil {
		panic("builder: WithRand(nil) is not allowed")
	}
	return func(cfg *builderConfig) {
		cfg.rng = rng
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and
// assigns it as the RNG source. Use this for reproducible randomness.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
