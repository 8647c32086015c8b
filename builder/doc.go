// Package builder generates deterministic random dependency fixtures over
// the fixed A..Z alphabet.
//
// What:
//
//   - RandomDependencies(opts...): for each uppercase letter in order, draws
//     an out-degree from {0,1,2,3,4} under a weighted distribution
//     (defaults 54 / 25 / 12.5 / 6.5 / 2) and samples that many distinct
//     targets from the other 25 letters. The emitted edge list feeds
//     core.FromEdges or depio.WriteRecords.
//   - RandomGraph(opts...): the same generation, returned as a built Graph.
//
// Why:
//   - Reproducible stress fixtures for the trace package: a fixed seed
//     yields an identical edge list on every run, which keeps benchmarks
//     and golden tests stable.
//
// Options:
//
//   - WithSeed(seed)             deterministic RNG for reproducible output
//   - WithRand(r)                caller-owned RNG stream (nil panics)
//   - WithOutDegreeWeights(w)    replace the degree distribution
//
// Errors:
//
//   - ErrNeedRandSource   no RNG supplied (WithSeed/WithRand required)
//   - ErrBadWeights       negative weight entry or non-positive sum
//
// The generator is a pure test fixture: the analysis core carries no
// invariants that depend on it beyond "valid edge records".
package builder
