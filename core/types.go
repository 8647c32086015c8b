// Package core defines the central Edge and Graph types for dependency
// analysis, and provides thread-safe primitives for building and querying
// insertion-ordered adjacency lists.
//
// A Graph maps each source node to the ordered sequence of destinations it
// depends on. Iteration order over sources is first-seen insertion order,
// and per-source destination order preserves the order edges were supplied.
// Duplicate edges are legal and preserved. A node with no outgoing edges is
// never a key of the mapping.
//
// This file declares Edge, Graph, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrEmptyNodeID - an edge endpoint is the empty string.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that an edge endpoint has an empty identifier.
	ErrEmptyNodeID = errors.New("core: node ID is empty")
)

// Edge represents a single dependency record: From depends on To.
//
// Both endpoints are opaque node identifiers. No uniqueness constraint
// applies; the same (From, To) pair may appear any number of times and
// every occurrence is preserved by the Graph.
type Edge struct {
	// From is the source node identifier.
	From string

	// To is the destination node identifier.
	To string
}

// Graph is the in-memory adjacency structure built from an ordered edge
// sequence.
//
// It is append-only: edges are added during the build phase and the
// structure is read-only thereafter. mu guards both the source order slice
// and the adjacency map, so a Graph may be shared across goroutines once
// built.
type Graph struct {
	mu sync.RWMutex // guards order and adj

	// order records source IDs in first-seen insertion order.
	order []string

	// adj maps a source ID to its destinations in input order.
	adj map[string][]string

	// edgeCount tracks the total number of stored edges.
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		order: make([]string, 0),
		adj:   make(map[string][]string),
	}
}

// FromEdges builds a Graph from the given ordered edge sequence.
// The first invalid record (empty endpoint) aborts the build with
// ErrEmptyNodeID; the boundary parser is expected to have filtered
// malformed lines already, so in practice this never fires on parsed input.
// Complexity: O(E)
func FromEdges(edges []Edge) (*Graph, error) {
	g := NewGraph()
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}

	return g, nil
}
