package trace_test

import (
	"fmt"

	"github.com/katalvlaran/deptrace/core"
	"github.com/katalvlaran/deptrace/trace"
)

// ExampleExplore traces a dependency graph that branches and loops.
// Graph structure:
//
//	A──▶B──▶C──▶B   (C loops back to B)
//	│
//	└──▶D           (plain leaf)
//
// Root A yields one loop-passing path and one clean path.
func ExampleExplore() {
	g := core.NewGraph()

	// Edges arrive in file order; that order fixes the output order.
	for _, e := range [][2]string{
		{"A", "B"}, {"A", "D"},
		{"B", "C"}, {"C", "B"},
	} {
		_ = g.AddEdge(e[0], e[1])
	}

	res, err := trace.Explore(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("paths:", res.Count())
	for _, tp := range res.Paths {
		fmt.Printf("%s [%s]\n", tp.Path, tp.Label)
	}

	// Output:
	// paths: 2
	// A -> B -> C -> B [ContainsLoop]
	// A -> D [NoLoop]
}

// ExampleClassify labels node sequences without running a trace.
func ExampleClassify() {
	fmt.Println(trace.Classify(trace.Path{"A", "B", "C"}))
	fmt.Println(trace.Classify(trace.Path{"A", "B", "A"}))
	fmt.Println(trace.Classify(trace.Path{"A", "B", "C", "B"}))

	// Output:
	// NoLoop
	// PureLoop
	// ContainsLoop
}
