package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deptrace/core"
)

func TestNewGraph_Empty(t *testing.T) {
	g := core.NewGraph()
	assert.Empty(t, g.Sources())
	assert.Equal(t, 0, g.SourceCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Edges())
}

func TestAddEdge_EmptyEndpoint(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge("", "B"), core.ErrEmptyNodeID)
	assert.ErrorIs(t, g.AddEdge("A", ""), core.ErrEmptyNodeID)
	// Rejected edges must leave the graph untouched.
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Sources())
}

func TestAddEdge_InsertionOrderOfSources(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("C", "A"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("C", "B"))
	require.NoError(t, g.AddEdge("B", "A"))

	// Sources in first-seen order, not lexicographic.
	assert.Equal(t, []string{"C", "A", "B"}, g.Sources())
}

func TestAddEdge_DestinationOrderAndDuplicates(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("A", "B")) // duplicate edge is preserved

	assert.Equal(t, []string{"B", "C", "B"}, g.Adjacent("A"))
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 1, g.SourceCount())
}

func TestAdjacent_LeafIsAbsent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))

	// B appears only as a destination: no adjacency entry, never a source.
	assert.Nil(t, g.Adjacent("B"))
	assert.False(t, g.HasSource("B"))
	assert.True(t, g.HasSource("A"))
	assert.Nil(t, g.Adjacent("Z"), "unknown node behaves like a leaf")
}

func TestSourcesAndAdjacent_ReturnCopies(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))

	srcs := g.Sources()
	srcs[0] = "mutated"
	assert.Equal(t, []string{"A"}, g.Sources())

	dests := g.Adjacent("A")
	dests[0] = "mutated"
	assert.Equal(t, []string{"B", "C"}, g.Adjacent("A"))
}

func TestFromEdges_BuildsInOrder(t *testing.T) {
	g, err := core.FromEdges([]core.Edge{
		{From: "A", To: "B"},
		{From: "B", To: "C"},
		{From: "A", To: "C"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, g.Sources())
	assert.Equal(t, []string{"B", "C"}, g.Adjacent("A"))
	assert.Equal(t, []string{"C"}, g.Adjacent("B"))
}

func TestFromEdges_InvalidRecordAborts(t *testing.T) {
	g, err := core.FromEdges([]core.Edge{
		{From: "A", To: "B"},
		{From: "", To: "C"},
	})
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
}

func TestEdges_RoundTripOrder(t *testing.T) {
	in := []core.Edge{
		{From: "B", To: "A"},
		{From: "A", To: "B"},
		{From: "B", To: "C"},
		{From: "B", To: "A"}, // duplicate survives the round trip
	}
	g, err := core.FromEdges(in)
	require.NoError(t, err)

	// Edges are grouped by source in first-seen order.
	assert.Equal(t, []core.Edge{
		{From: "B", To: "A"},
		{From: "B", To: "C"},
		{From: "B", To: "A"},
		{From: "A", To: "B"},
	}, g.Edges())
}
