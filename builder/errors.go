// SPDX-License-Identifier: MIT
// Package: deptrace/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations SHOULD attach context using `%w`.
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrNeedRandSource indicates that a stochastic generator requires a non-nil
// *rand.Rand in the resolved config (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadWeights indicates that the out-degree weight vector is unusable:
// a negative entry, or a non-positive sum.
// Usage: if errors.Is(err, ErrBadWeights) { /* fix the distribution */ }.
var ErrBadWeights = errors.New("builder: invalid out-degree weights")
