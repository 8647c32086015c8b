// Package trace implements exhaustive dependency path tracing on a
// core.Graph: root selection over sources in insertion order, recursive
// path search with an in-path visited set, and three-way loop
// classification of every discovered path.
//
// Complexity:
//
//   - Time:   O(W·L) where W is the number of distinct walks and L their
//     average length. W grows exponentially with graph density; this is an
//     accepted tradeoff: each distinct walk is a separate output path.
//   - Memory: O(D·L) for the copy-on-entry path/visited snapshots along one
//     recursion branch (D = branch depth, bounded by distinct node count).
package trace

import (
	"fmt"

	"github.com/katalvlaran/deptrace/core"
)

// walker encapsulates state during a trace run.
type walker struct {
	graph *core.Graph // underlying read-only graph
	opts  Options     // trace options
}

// Explore enumerates all paths starting from roots that are not yet covered
// by a previously emitted path, then classifies each path.
//
// Root selection iterates the graph's sources in insertion order. A source
// is a valid root while its coverage flag is still set; after a root's full
// path set returns, every node appearing anywhere in those paths loses its
// flag. The policy is intentionally coarse: a node may be explored several
// times as an intermediate hop before its own turn arrives and is skipped,
// and coverage is not guaranteed to be minimal. This looser behavior is
// part of the contract and must not be tightened.
//
// Returns ErrGraphNil for a nil graph, the context error if cancelled, or
// any error returned by the OnPath hook.
func Explore(g *core.Graph, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	topts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&topts)
	}

	// 3. Root-coverage flags: every source starts as a valid root.
	sources := g.Sources()
	active := make(map[string]bool, len(sources))
	for _, src := range sources {
		active[src] = true
	}

	w := &walker{graph: g, opts: topts}
	res := &Result{}

	// 4. Outer root-selection loop. Flags mutate only between search calls.
	for _, src := range sources {
		if !active[src] {
			res.Skipped++
			continue
		}

		paths, err := w.search(src, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("trace: search from %q: %w", src, err)
		}

		// Mark every node of every returned path as covered, source or not.
		var p Path
		for _, p = range paths {
			for _, node := range p {
				active[node] = false
			}
		}

		// Emit in production order, firing the hook before classification.
		for _, p = range paths {
			if topts.OnPath != nil {
				if err = topts.OnPath(p); err != nil {
					return nil, fmt.Errorf("trace: OnPath hook for %q: %w", p.String(), err)
				}
			}
			res.record(p)
		}
	}

	return res, nil
}

// search discovers every path from node to a leaf or loop closure.
//
// pathSoFar and visitedSoFar are treated as value-semantics snapshots: the
// function extends private copies on entry, so sibling branches never
// observe each other's extensions. Recursion terminates because the visited
// set strictly grows along any branch and the node alphabet is finite.
func (w *walker) search(node string, pathSoFar Path, visitedSoFar map[string]struct{}) ([]Path, error) {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return nil, w.opts.Ctx.Err()
	default:
	}

	// 2. Copy-on-entry snapshots: extend path and visited set privately.
	path := make(Path, len(pathSoFar), len(pathSoFar)+1)
	copy(path, pathSoFar)
	path = append(path, node)

	visited := make(map[string]struct{}, len(visitedSoFar)+1)
	for id := range visitedSoFar {
		visited[id] = struct{}{}
	}
	visited[node] = struct{}{}

	// 3. Explore each destination in edge order.
	var results []Path
	var err error
	var sub []Path
	for _, nbr := range w.graph.Adjacent(node) {
		if _, seen := visited[nbr]; seen {
			// Loop closure: emit path+[nbr] and do not recurse further.
			closed := make(Path, len(path), len(path)+1)
			copy(closed, path)
			results = append(results, append(closed, nbr))

			continue
		}
		if sub, err = w.search(nbr, path, visited); err != nil {
			return nil, err
		}
		results = append(results, sub...)
	}

	// 4. Leaf termination, and the defensive base case: with no outgoing
	//    edges (or no produced results) the only path is the one walked.
	if len(results) == 0 {
		return []Path{path}, nil
	}

	return results, nil
}

// record classifies p and appends it to the production list and its bucket.
func (r *Result) record(p Path) {
	tp := TracedPath{Path: p, Label: Classify(p)}
	r.Paths = append(r.Paths, tp)

	switch tp.Label {
	case NoLoop:
		r.NoLoop = append(r.NoLoop, tp)
	case PureLoop:
		r.PureLoop = append(r.PureLoop, tp)
	case ContainsLoop:
		r.ContainsLoop = append(r.ContainsLoop, tp)
	}
}

// Classify labels a completed path. It is pure and idempotent: re-running
// it on the same node sequence always yields the same label.
//
//  1. No repeated node                                → NoLoop
//  2. Repeat exists, p[0] == p[last] and len(p) > 1   → PureLoop
//  3. Any other repeat                                → ContainsLoop
//
// Complexity: O(len(p)).
func Classify(p Path) Label {
	seen := make(map[string]struct{}, len(p))
	hasRepeat := false
	for _, node := range p {
		if _, dup := seen[node]; dup {
			hasRepeat = true
		}
		seen[node] = struct{}{}
	}

	if !hasRepeat {
		return NoLoop
	}
	if len(p) > 1 && p[0] == p[len(p)-1] {
		return PureLoop
	}

	return ContainsLoop
}
