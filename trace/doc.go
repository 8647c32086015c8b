// Package trace enumerates and classifies dependency paths on a core.Graph.
//
// What:
//
//   - Explore(g, opts...): walks the graph's sources in insertion order,
//     skipping roots already covered by earlier paths, and performs a
//     recursive depth-first path search from each remaining root. Every
//     distinct walk ends at a leaf (no outgoing edges) or a loop closure
//     (first revisit of a node already on the path) and becomes one output
//     path.
//   - Classify(p): labels a completed path NoLoop, PureLoop, or
//     ContainsLoop from its node sequence alone.
//   - Result: production-ordered path list plus the three label buckets,
//     filled in a single classification pass.
//
// Why:
//   - Surface circular dependencies in build systems, package managers, and
//     task schedulers, distinguishing true cycles from paths that merely
//     pass through one.
//   - Deterministic, reviewable output: root order, branch order, and
//     bucket order are all fixed by the input.
//
// Root-coverage policy:
//   - After a root's full path set is produced, every node appearing in any
//     of those paths stops being a valid root. The policy is deliberately
//     approximate: it avoids redundant restarts without guaranteeing that
//     every node is covered as a root exactly once. Callers must not rely
//     on tighter semantics.
//
// Value semantics:
//   - Each recursion branch extends private copies of the accumulated path
//     and visited set (copy-on-entry), so sibling branches are independent.
//     Dense graphs therefore yield one path per distinct walk, with
//     exponential blow-up possible; this is a documented scalability limit,
//     not a defect to optimize away.
//
// Key Types:
//
//   - Path, Label (NoLoop, PureLoop, ContainsLoop), TracedPath, Result
//   - Option / Options: WithContext, WithOnPath
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - context.Canceled   trace cancelled via context
//   - hook errors        propagated from OnPath
//
// Complexity:
//
//   - Time O(W·L), memory O(D·L): W = distinct walks, L = average path
//     length, D = branch depth (bounded by the distinct node count).
package trace
