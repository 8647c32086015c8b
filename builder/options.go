// SPDX-License-Identifier: MIT
// Package: deptrace/builder
//
// options.go — functional options and internal configuration.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand" // RNG source for stochastic generation
)

// Option customizes the behavior of a generator by mutating a builderConfig
// instance before generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// builderConfig aggregates all knobs used by generators.
// It is resolved once per call and never escapes the package.
type builderConfig struct {
	// RNG for stochastic choices; nil means "not seeded" and is rejected
	// by stochastic generators with ErrNeedRandSource.
	rng *rand.Rand

	// Out-degree weights for degrees 0..maxOutDegree, in order.
	// Only the relative magnitudes matter; the sum need not be 100.
	weights [maxOutDegree + 1]float64
}

// Default out-degree distribution: degree k with weight weights[k].
// Mirrors the canonical fixture distribution (54 / 25 / 12.5 / 6.5 / 2).
var defaultWeights = [maxOutDegree + 1]float64{54, 25, 12.5, 6.5, 2}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		weights: defaultWeights,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed returns an Option that installs a deterministic RNG seeded with
// the given value. Prefer this for reproducible fixtures and golden tests.
func WithSeed(seed int64) Option {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand returns an Option that installs the caller's RNG stream.
// Panics if r is nil (option constructors validate; generators never panic).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(cfg *builderConfig) {
		cfg.rng = r
	}
}

// WithOutDegreeWeights returns an Option that replaces the out-degree
// distribution. The vector covers degrees 0..4 in order; entries must be
// non-negative with a positive sum, validated at generation time with
// ErrBadWeights.
func WithOutDegreeWeights(w [maxOutDegree + 1]float64) Option {
	return func(cfg *builderConfig) {
		cfg.weights = w
	}
}
