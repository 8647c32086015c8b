// Package core provides the fundamental insertion-ordered adjacency list.
//
// It offers thread-safe methods to append and query dependency edges.
// All mutations acquire a write lock; queries acquire a read lock.
package core

// AddEdge appends a dependency edge from fromID to toID.
// The first time fromID is seen as a source it is recorded in insertion
// order; destinations accumulate in the order supplied. Duplicate edges are
// preserved. Destination-only nodes are not given adjacency entries.
// Returns ErrEmptyNodeID if either endpoint is empty.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1) amortized per edge insertion.
func (g *Graph) AddEdge(fromID, toID string) error {
	if fromID == "" || toID == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Record the source on first sight to preserve insertion order.
	if _, seen := g.adj[fromID]; !seen {
		g.order = append(g.order, fromID)
	}
	g.adj[fromID] = append(g.adj[fromID], toID)
	g.edgeCount++

	return nil
}

// HasSource reports whether id has at least one outgoing edge.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) HasSource(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[id]

	return ok
}

// Sources returns all source node IDs in first-seen insertion order.
// The returned slice is a copy; mutating it does not affect the Graph.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V)
func (g *Graph) Sources() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Adjacent returns the destinations of id in input order, duplicates
// included. Returns nil when id has no outgoing edges (leaf or unknown).
// The returned slice is a copy; mutating it does not affect the Graph.
// Thread-safe: acquires a read lock.
//
// Complexity: O(d) where d is the out-degree of id.
func (g *Graph) Adjacent(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	dests, ok := g.adj[id]
	if !ok {
		return nil
	}
	out := make([]string, len(dests))
	copy(out, dests)

	return out
}

// SourceCount returns the number of distinct source nodes.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) SourceCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the total number of stored edges, duplicates included.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns a flat copy of all stored edges in insertion order:
// sources in first-seen order, destinations in input order per source.
// Thread-safe: acquires a read lock.
//
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, src := range g.order {
		for _, dst := range g.adj[src] {
			out = append(out, Edge{From: src, To: dst})
		}
	}

	return out
}
