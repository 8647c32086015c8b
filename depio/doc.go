// Package depio is the text I/O boundary for dependency analysis.
//
// What:
//
//   - ParseRecords: reads "<source> -> <destination>" lines into core.Edge
//     values, silently skipping any line that does not split into exactly
//     three whitespace-separated tokens. Malformed input is a boundary
//     concern, dropped before it ever reaches the graph builder.
//   - WriteRecords: the inverse rendering, used by the fixture generator.
//   - WriteReport: the canonical three-section path report: a count line,
//     the loop-free section, and the circular-dependency section (pure
//     loops before loop-passing paths). Headings are emitted only for
//     non-empty sections; an empty trace prints the count line alone.
//
// The analysis core never performs I/O itself; these helpers are thin
// wrappers around io.Reader/io.Writer so callers choose the medium.
package depio
