package digraph

// Reverse returns a new graph with identical vertex index assignment in
// which every edge (v, w) is replaced by (w, v). The receiver is not
// mutated. Reversing twice restores the original edge set.
// Complexity: O(V + E).
func (g *Digraph[V]) Reverse() *Digraph[V] {
	r := &Digraph[V]{index: g.index.clone()}
	r.adj.init(g.index.len())
	r.adj.grow(g.index.len())

	// Flip each edge in source-major order. Edge lists in the result are
	// grouped by their new source; the edge set is exactly the flipped set.
	for vi, targets := range g.adj.out {
		for _, wi := range targets {
			r.adj.addEdge(wi, vi)
			r.edgeTargets = append(r.edgeTargets, r.index.vertexOf[vi])
		}
	}

	return r
}
