// Package depgraph models dependency-like relationships among arbitrary
// typed entities: a deterministic directed graph with cycle detection and
// topological ordering, plus a forward-reference layer that accepts edges
// to entities that have not been registered yet and reconciles them later —
// the two-phase link pattern of build systems, module loaders, and linkers.
//
// Everything lives in two subpackages:
//
//	digraph/  — append-only directed graph: dense vertex indexing, memoized
//	            single-pass DFS (cycle + reverse postorder), reversal,
//	            insertion-order-independent structural equality
//	refgraph/ — reference resolution over digraph: declare edges against
//	            derived keys now, bind the real vertices before the first
//	            read, fail loudly on dangling keys
//
// Both packages are single-threaded by contract and perform no I/O; callers
// that share an instance across goroutines must synchronize externally.
package depgraph
