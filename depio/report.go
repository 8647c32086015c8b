package depio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/deptrace/trace"
)

// Report vocabulary. The annotations and headings are part of the public
// output contract; downstream tooling greps for them.
const (
	countLineFormat = "Paths found: %d\n"

	headingNoLoop = "No circular dependency:"
	headingLoop   = "Circular dependency detected:"

	annotationNoLoop       = "(No loop detected)"
	annotationPureLoop     = "(Pure loop)"
	annotationContainsLoop = "(Contains a loop)"
)

// WriteReport renders a trace result to w in the canonical layout:
//
//	Paths found: {N}
//	No circular dependency:
//	{path} (No loop detected)          ← every NoLoop path
//	Circular dependency detected:
//	{path} (Pure loop)                 ← every PureLoop path
//	{path} (Contains a loop)           ← then every ContainsLoop path
//
// Each heading appears only when its section has at least one entry, so an
// empty result produces the count line alone. Within each bucket, paths
// keep the order the trace produced them in.
func WriteReport(w io.Writer, res *trace.Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, countLineFormat, res.Count())

	if len(res.NoLoop) > 0 {
		fmt.Fprintln(bw, headingNoLoop)
		writeBucket(bw, res.NoLoop, annotationNoLoop)
	}

	if len(res.PureLoop)+len(res.ContainsLoop) > 0 {
		fmt.Fprintln(bw, headingLoop)
		writeBucket(bw, res.PureLoop, annotationPureLoop)
		writeBucket(bw, res.ContainsLoop, annotationContainsLoop)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("depio: write report: %w", err)
	}

	return nil
}

// writeBucket renders one classification bucket with its annotation.
func writeBucket(w io.Writer, bucket []trace.TracedPath, annotation string) {
	for _, tp := range bucket {
		fmt.Fprintf(w, "%s %s\n", tp.Path, annotation)
	}
}
