// SPDX-License-Identifier: MIT
// Package: deptrace/builder
//
// impl_dependencies.go - implementation of RandomDependencies / RandomGraph.
//
// Canonical model:
//   - For each letter A..Z in alphabetical order, draw an out-degree from
//     {0..4} under the configured weight vector, then sample that many
//     DISTINCT targets uniformly from the other 25 letters.
//   - Edges are emitted in letter order; per letter, in sample order.
//
// Contract:
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Weights must be non-negative with a positive sum (else ErrBadWeights).
//   - No self-edges; no duplicate targets per letter.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(A·(A + maxOutDegree)) with A=26 (one shuffle per lettered draw).
//   - Space: O(A) scratch for the candidate permutation.
//
// Determinism:
//   - Stable letter order: A asc.
//   - One degree draw, then (for deg>0) one candidate shuffle per letter,
//     so outcomes are fully reproducible for a fixed seed and weights.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/deptrace/core"
)

// File-local constants (no magic literals; stable method tag and domains).
const (
	methodRandomDependencies = "RandomDependencies"

	// alphabet is the fixed node universe: 26 uppercase letters.
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// maxOutDegree caps how many dependencies a single letter may receive.
	maxOutDegree = 4
)

// RandomDependencies generates a random dependency edge list over the fixed
// A..Z alphabet, assigning each letter 0..4 distinct outgoing edges to other
// letters according to the configured weighted distribution.
//
// The result is a valid input for core.FromEdges and depio.WriteRecords.
func RandomDependencies(opts ...Option) ([]core.Edge, error) {
	// 1) Resolve configuration from functional options (O(len(opts))).
	cfg := newBuilderConfig(opts...)

	// 2) Validate the weight vector: non-negative entries, positive sum.
	var total float64
	for i, w := range cfg.weights {
		if w < 0 {
			return nil, fmt.Errorf("%s: weights[%d]=%g is negative: %w",
				methodRandomDependencies, i, w, ErrBadWeights)
		}
		total += w
	}
	if total <= 0 {
		return nil, fmt.Errorf("%s: weight sum %g is not positive: %w",
			methodRandomDependencies, total, ErrBadWeights)
	}

	// 3) Stochastic generation strictly requires an explicit RNG.
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", methodRandomDependencies, ErrNeedRandSource)
	}

	// 4) Walk the alphabet in stable order and sample per-letter edges.
	var edges []core.Edge
	var left byte
	for i := 0; i < len(alphabet); i++ {
		left = alphabet[i]

		// 4a) Draw the out-degree for this letter.
		deg := drawDegree(cfg.rng, cfg.weights, total)
		if deg == 0 {
			continue
		}

		// 4b) Sample deg distinct targets from the other 25 letters:
		//     shuffle the candidate indices and take a prefix.
		perm := cfg.rng.Perm(len(alphabet) - 1)
		for _, pick := range perm[:deg] {
			// Skip over the current letter to exclude self-edges.
			j := pick
			if j >= i {
				j++
			}
			edges = append(edges, core.Edge{
				From: string(left),
				To:   string(alphabet[j]),
			})
		}
	}

	// 5) Success: deterministic edge list for a fixed seed and weights.
	return edges, nil
}

// RandomGraph is a thin helper: generate a random dependency list and build
// the corresponding core.Graph in one call. It returns sentinel errors from
// generation; FromEdges cannot fail on generated edges (endpoints are
// single letters, never empty).
func RandomGraph(opts ...Option) (*core.Graph, error) {
	edges, err := RandomDependencies(opts...)
	if err != nil {
		return nil, fmt.Errorf("RandomGraph: %w", err)
	}

	return core.FromEdges(edges)
}

// drawDegree samples an out-degree from the cumulative weight distribution.
// total is the precomputed positive weight sum.
func drawDegree(rng *rand.Rand, weights [maxOutDegree + 1]float64, total float64) int {
	// A single uniform draw over [0, total) selects the bucket.
	r := rng.Float64() * total
	var acc float64
	for deg, w := range weights {
		acc += w
		if r < acc {
			return deg
		}
	}

	// Floating-point edge: r landed on the upper boundary.
	return maxOutDegree
}
