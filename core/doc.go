// Package core implements the dependency Graph: an insertion-ordered
// adjacency list built once from an ordered edge sequence and read-only
// thereafter.
//
// What:
//
//   - Edge: an ordered (From, To) dependency record; duplicates are legal.
//   - Graph: maps each source node to its ordered destination sequence.
//     Source iteration order is first-seen insertion order; destination
//     order preserves input order. Nodes with no outgoing edges are absent
//     from the mapping and never become traversal roots.
//   - FromEdges: bulk construction from an edge slice.
//
// Why:
//   - Deterministic traversal: the trace package walks sources in insertion
//     order and neighbors in edge order, so analysis output is stable for a
//     fixed input.
//   - Faithful input model: dependency files may repeat edges; the Graph
//     keeps every occurrence rather than collapsing them.
//
// Concurrency:
//   - All methods are guarded by a sync.RWMutex. The intended lifecycle is
//     build-then-read: mutate during construction, then share freely.
//
// Errors:
//
//   - ErrEmptyNodeID  edge endpoint is the empty string
//
// Complexity:
//
//   - AddEdge:  O(1) amortized
//   - Queries:  O(1) except Sources O(V), Adjacent O(d), Edges O(E)
package core
