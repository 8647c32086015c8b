// Package trace defines types and options for dependency path tracing,
// including cancellation, a per-path production hook, loop classification
// labels, and the Result collector with its three label buckets.
package trace

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Explore.
	ErrGraphNil = errors.New("trace: graph is nil")
)

// Path is an ordered walk of node identifiers starting at some root.
// Every consecutive pair is an edge of the traced Graph, except that a path
// may terminate immediately after revisiting a node already present earlier
// in the same path (loop closure); no extension happens past that point.
type Path []string

// String renders the path as "n1 -> n2 -> ... -> nk".
func (p Path) String() string {
	return strings.Join(p, " -> ")
}

// Label classifies a completed Path with respect to loops.
type Label int

const (
	// NoLoop: no node identifier occurs more than once in the path.
	NoLoop Label = iota

	// PureLoop: the path revisits exactly its own start (p[0] == p[last],
	// length > 1).
	PureLoop

	// ContainsLoop: the path revisits some node, but the repeat is not
	// (start, end): it passes through a loop without returning to its start.
	ContainsLoop
)

// String returns the label's identifier name.
func (l Label) String() string {
	switch l {
	case NoLoop:
		return "NoLoop"
	case PureLoop:
		return "PureLoop"
	case ContainsLoop:
		return "ContainsLoop"
	default:
		return "Unknown"
	}
}

// TracedPath pairs a completed Path with its classification.
// Paths are immutable once produced; classification does not mutate them.
type TracedPath struct {
	Path  Path
	Label Label
}

// Option configures optional behavior of path tracing.
// Use with Explore(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for path tracing.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the trace early.
	Ctx context.Context

	// OnPath, if non-nil, is invoked for each completed path in production
	// order, before classification. Returning an error aborts the trace
	// with that error.
	OnPath func(p Path) error
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No per-path hook
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnPath: nil,
	}
}

// WithContext returns an Option that sets the Context for the trace.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPath returns an Option that installs fn as the per-path hook.
// The hook observes every completed path in production order.
func WithOnPath(fn func(p Path) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}

// Result captures the outcome of a full trace run.
//
// Paths holds every discovered path in production order (root order, then
// branch order). The three bucket slices partition the same paths by label
// and are populated during a single classification pass; within each bucket
// production order is preserved.
type Result struct {
	// Paths records every discovered path with its label, in production order.
	Paths []TracedPath

	// NoLoop collects paths with no repeated node.
	NoLoop []TracedPath

	// PureLoop collects paths that return exactly to their own start.
	PureLoop []TracedPath

	// ContainsLoop collects paths that pass through a loop without
	// returning to their start.
	ContainsLoop []TracedPath

	// Skipped counts roots bypassed because an earlier root's paths already
	// covered them. Useful for diagnostics.
	Skipped int
}

// Count returns the total number of discovered paths.
func (r *Result) Count() int {
	return len(r.Paths)
}
