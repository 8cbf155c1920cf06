package digraph

// memoCache holds the lazily recomputed results that a structural mutation
// must discard: the shared DFS pass outputs (cycle and topological order)
// and the canonical adjacency form used by structural comparison.
//
// Each slot follows a tiny Fresh|Stale state machine: invalidate flips both
// slots to Stale; the owning read path recomputes its slot on demand and
// flips it back to Fresh. The cache is never observable outside Digraph.
type memoCache[V comparable] struct {
	// DFS slot (Cycle / TopologicalOrder).
	dfsFresh bool
	cycle    []V // closed back-edge walk, nil when acyclic
	topo     []V // reverse postorder, nil when a cycle exists

	// Canonical-form slot (StructuralEqual / StructuralHash).
	canonFresh bool
	vertexHash []uint64   // per-index derived vertex hash
	canon      [][]uint64 // per-index sorted out-neighbor hashes
}

// invalidate marks both slots Stale. Called on every accepted mutation.
func (m *memoCache[V]) invalidate() {
	m.dfsFresh = false
	m.cycle = nil
	m.topo = nil
	m.canonFresh = false
	m.vertexHash = nil
	m.canon = nil
}
