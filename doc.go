// Package deptrace analyzes directed dependency graphs ("A depends on B")
// and enumerates every walk from each still-uncovered root, classifying the
// results as loop-free, pure loops, or loop-passing paths.
//
// 🚀 What is deptrace?
//
//	A small, focused toolkit that brings together:
//		• Core primitives: an insertion-ordered adjacency list built from edge records
//		• Tracing: exhaustive root-to-leaf / root-to-loop-closure path enumeration
//		• Classification: three-way loop labeling of every discovered path
//		• Fixtures: a deterministic random dependency generator for testing
//		• Boundary I/O: "A -> B" record parsing and the textual path report
//
// ✨ Why choose deptrace?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – stable output order for a fixed input and seed
//   - Pure Go – no cgo, no hidden machinery
//   - Honest about limits – dense graphs yield one path per distinct walk
//
// Under the hood, everything is organized under four subpackages:
//
//	core/    — Edge and the insertion-ordered Graph adjacency structure
//	trace/   — root selection, recursive path search, loop classification
//	builder/ — seeded random dependency fixtures over the A..Z alphabet
//	depio/   — text record parsing and report rendering
//
// Quick ASCII example:
//
//	A──▶B──▶C
//	     ▲   │
//	     └───┘
//
// From root A the trace yields A -> B -> C -> B: a path that passes
// through a loop without returning to its own start.
//
// Dive into each package's example_test.go for runnable walkthroughs.
//
//	go get github.com/katalvlaran/deptrace
package deptrace
