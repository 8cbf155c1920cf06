// Package digraph provides an append-only directed graph over arbitrary
// comparable vertex values, with deterministic cycle detection, topological
// ordering, graph reversal, and insertion-order-independent structural
// equality.
//
// Vertices are identified purely by value equality: adding an equal value
// twice never creates a second vertex. Internally each distinct vertex is
// assigned a dense integer index in first-seen order, starting at 0, with no
// gaps and no reuse. Vertex removal is not supported.
//
// Edges are deduplicated by (from, to) pair; resubmitting an existing edge is
// a no-op. Self-loops are stored but — deliberately — never reported as
// cycles, so a graph whose only edge is (a, a) still has a topological order.
// This mirrors the behavior long relied upon by callers and is covered by
// tests rather than "fixed".
//
// Cycle and TopologicalOrder share a single memoized DFS pass: both results
// are computed together, cached, and invalidated whenever the structure
// grows. Determinism: the DFS visits roots in ascending index order and
// neighbors in edge-insertion order, so results depend only on the insertion
// history.
//
// Concurrency: a Digraph is not safe for concurrent use. All mutation and all
// reads must be driven by a single goroutine, or synchronized externally by
// the caller. The package adds no internal locking.
//
// Complexity:
//
//   - AddVertex / AddEdge:          O(1) amortized
//   - Cycle / TopologicalOrder:     O(V + E) on a cold cache, O(1) cached
//   - Reverse / Clone:              O(V + E)
//   - StructuralEqual:              O(V + E log E) on a cold canonical cache
package digraph
