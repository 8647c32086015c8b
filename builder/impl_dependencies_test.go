package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deptrace/builder"
	"github.com/katalvlaran/deptrace/core"
)

func TestRandomDependencies_RequiresRNG(t *testing.T) {
	edges, err := builder.RandomDependencies()
	assert.Nil(t, edges)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomDependencies_DeterministicPerSeed(t *testing.T) {
	a, err := builder.RandomDependencies(builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.RandomDependencies(builder.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, a, b, "same seed must reproduce the same edge list")

	c, err := builder.RandomDependencies(builder.WithSeed(43))
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seeds should diverge")
}

func TestRandomDependencies_Invariants(t *testing.T) {
	// A handful of seeds to cover different degree draws.
	for _, seed := range []int64{1, 7, 42, 1000} {
		edges, err := builder.RandomDependencies(builder.WithSeed(seed))
		require.NoError(t, err)

		perLetter := make(map[string]map[string]bool)
		for _, e := range edges {
			assert.Len(t, e.From, 1)
			assert.Len(t, e.To, 1)
			assert.GreaterOrEqual(t, e.From[0], byte('A'))
			assert.LessOrEqual(t, e.From[0], byte('Z'))
			assert.GreaterOrEqual(t, e.To[0], byte('A'))
			assert.LessOrEqual(t, e.To[0], byte('Z'))
			assert.NotEqual(t, e.From, e.To, "self-edges are excluded")

			if perLetter[e.From] == nil {
				perLetter[e.From] = make(map[string]bool)
			}
			assert.False(t, perLetter[e.From][e.To],
				"seed %d: duplicate target %s for letter %s", seed, e.To, e.From)
			perLetter[e.From][e.To] = true
		}
		for from, targets := range perLetter {
			assert.LessOrEqual(t, len(targets), 4, "letter %s exceeds the degree cap", from)
		}
	}
}

func TestRandomDependencies_ForcedDegrees(t *testing.T) {
	// All weight on degree 0: no edges at all.
	edges, err := builder.RandomDependencies(
		builder.WithSeed(1),
		builder.WithOutDegreeWeights([5]float64{1, 0, 0, 0, 0}),
	)
	require.NoError(t, err)
	assert.Empty(t, edges)

	// All weight on degree 4: every letter emits exactly four edges.
	edges, err = builder.RandomDependencies(
		builder.WithSeed(1),
		builder.WithOutDegreeWeights([5]float64{0, 0, 0, 0, 1}),
	)
	require.NoError(t, err)
	assert.Len(t, edges, 26*4)
}

func TestRandomDependencies_BadWeights(t *testing.T) {
	_, err := builder.RandomDependencies(
		builder.WithSeed(1),
		builder.WithOutDegreeWeights([5]float64{1, -1, 0, 0, 0}),
	)
	assert.ErrorIs(t, err, builder.ErrBadWeights)

	_, err = builder.RandomDependencies(
		builder.WithSeed(1),
		builder.WithOutDegreeWeights([5]float64{}),
	)
	assert.ErrorIs(t, err, builder.ErrBadWeights)
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestWithRand_SharedStream(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	edges, err := builder.RandomDependencies(builder.WithRand(rng))
	require.NoError(t, err)

	// Same underlying source, same point in the stream → same output.
	want, err := builder.RandomDependencies(builder.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.Equal(t, want, edges)
}

func TestRandomGraph_BuildsFromGeneratedEdges(t *testing.T) {
	g, err := builder.RandomGraph(builder.WithSeed(42))
	require.NoError(t, err)
	require.NotNil(t, g)

	edges, err := builder.RandomDependencies(builder.WithSeed(42))
	require.NoError(t, err)

	want, err := core.FromEdges(edges)
	require.NoError(t, err)
	assert.Equal(t, want.Edges(), g.Edges())
}

func TestRandomGraph_PropagatesSentinels(t *testing.T) {
	g, err := builder.RandomGraph()
	assert.Nil(t, g)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}
