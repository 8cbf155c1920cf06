// Package digraph: the single DFS pass shared by Cycle and TopologicalOrder.
//
// One traversal over the full vertex set produces both results consistently:
// either a back-edge closed walk, or the reverse postorder of the whole
// graph. The pass is memoized on the Digraph and rerun only after a
// structural mutation.
//
// Determinism: roots are visited in ascending index order (first-seen order)
// and neighbors in edge-insertion order, so for a fixed insertion history the
// discovered cycle and the topological order are fixed.
//
// Complexity:
//
//   - Time:   O(V + E), each vertex and edge visited at most once
//   - Memory: O(V) for marks, stack flags, and predecessor links
package digraph

// dfsPass carries the traversal state for one run over a Digraph.
type dfsPass[V comparable] struct {
	g       *Digraph[V]
	marked  []bool // vertex has been discovered
	onStack []bool // vertex is on the active recursion path
	edgeTo  []int  // predecessor index, for back-edge walk reconstruction
	post    []int  // postorder (finish order) of vertex indices
	cycle   []int  // discovered closed walk, nil until found
}

// Cycle returns a back-edge cycle as a closed walk (first and last vertex
// equal) if one exists. Self-loops are deliberately never reported — see the
// package documentation.
// Complexity: O(V + E) on a cold cache, O(1) when memoized.
func (g *Digraph[V]) Cycle() ([]V, bool) {
	g.ensureDFS()
	if g.memo.cycle == nil {
		return nil, false
	}

	return append([]V(nil), g.memo.cycle...), true
}

// TopologicalOrder returns the reverse postorder of a full DFS traversal if
// and only if the graph is acyclic (self-loops excepted); otherwise the
// second result is false. Shares its DFS pass, and its cache, with Cycle.
// Complexity: O(V + E) on a cold cache, O(1) when memoized.
func (g *Digraph[V]) TopologicalOrder() ([]V, bool) {
	g.ensureDFS()
	if g.memo.cycle != nil {
		return nil, false
	}

	return append([]V(nil), g.memo.topo...), true
}

// ensureDFS reruns the shared DFS pass if the memoized results are stale.
func (g *Digraph[V]) ensureDFS() {
	if g.memo.dfsFresh {
		return
	}

	n := g.index.len()
	pass := &dfsPass[V]{
		g:       g,
		marked:  make([]bool, n),
		onStack: make([]bool, n),
		edgeTo:  make([]int, n),
		post:    make([]int, 0, n),
	}

	// Drive the traversal from every undiscovered vertex in index order;
	// stop as soon as a cycle surfaces.
	for v := 0; v < n && pass.cycle == nil; v++ {
		if !pass.marked[v] {
			pass.visit(v)
		}
	}

	if pass.cycle != nil {
		// A cycle discards the topological order for this run.
		g.memo.cycle = g.toVertices(pass.cycle)
		g.memo.topo = nil
	} else {
		g.memo.cycle = nil
		g.memo.topo = g.toVertices(reversed(pass.post))
	}
	g.memo.dfsFresh = true
}

// visit explores v depth-first, recording the first back edge it meets.
func (p *dfsPass[V]) visit(v int) {
	p.marked[v] = true
	p.onStack[v] = true

	for _, w := range p.g.adj.out[v] {
		// Short-circuit: a cycle found deeper propagates straight up.
		if p.cycle != nil {
			return
		}
		if !p.marked[w] {
			p.edgeTo[w] = v
			p.visit(w)
		} else if p.onStack[w] && w != v {
			// Back edge v->w with w still on the recursion path.
			// The w == v guard keeps self-loops out of cycle reporting.
			p.cycle = closeWalk(p.edgeTo, v, w)

			return
		}
	}

	p.onStack[v] = false
	p.post = append(p.post, v)
}

// closeWalk reconstructs the closed walk for back edge v->w by following
// predecessor links from v back to w: [v, ..., w, v] read tail-first, i.e.
// the returned slice starts at v's end of the path and closes on v.
func closeWalk(edgeTo []int, v, w int) []int {
	walk := make([]int, 0, 4)
	for x := v; x != w; x = edgeTo[x] {
		walk = append(walk, x)
	}
	walk = append(walk, w, v)

	return walk
}

// toVertices maps a slice of vertex indices back to vertex values.
func (g *Digraph[V]) toVertices(indices []int) []V {
	out := make([]V, len(indices))
	for i, idx := range indices {
		out[i] = g.index.vertexOf[idx]
	}

	return out
}

// reversed returns a reversed copy of indices.
func reversed(indices []int) []int {
	out := make([]int, len(indices))
	for i, idx := range indices {
		out[len(indices)-1-i] = idx
	}

	return out
}
