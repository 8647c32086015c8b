// Package depio implements the text boundary: parsing "A -> B" dependency
// records and rendering them back out.
package depio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/deptrace/core"
)

// recordTokens is the exact token count of a well-formed record:
// source, arrow, destination.
const recordTokens = 3

// ParseRecords reads dependency records from r, one per line, in the form
// "<source> -> <destination>". A line that does not split into exactly
// three whitespace-separated tokens is skipped silently (not an error,
// not logged). The middle token is not inspected. Edge order equals line
// order. Only reader failures are surfaced.
//
// Complexity: O(total input length).
func ParseRecords(r io.Reader) ([]core.Edge, error) {
	var edges []core.Edge

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		tokens := strings.Fields(sc.Text())
		if len(tokens) != recordTokens {
			continue // malformed record: dropped at the boundary
		}
		edges = append(edges, core.Edge{From: tokens[0], To: tokens[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("depio: read records: %w", err)
	}

	return edges, nil
}

// WriteRecords renders edges to w as "A -> B" lines, one per edge, in
// slice order. The output is a valid ParseRecords input.
func WriteRecords(w io.Writer, edges []core.Edge) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		fmt.Fprintf(bw, "%s -> %s\n", e.From, e.To)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("depio: write records: %w", err)
	}

	return nil
}
