// Package digraph: mutators and accessors for the Digraph type.
//
// Every mutation is validated before any state is touched, so a failed call
// leaves the graph exactly as it was. Any mutation that actually grows the
// structure marks the memoized DFS and canonical-form results stale.
package digraph

// AddVertex assigns v a fresh dense index if it is unseen.
// Returns whether the graph changed. Adjacency is untouched.
// Complexity: O(1) amortized.
func (g *Digraph[V]) AddVertex(v V) bool {
	_, added := g.index.add(v)
	if added {
		g.adj.grow(g.index.len())
		g.memo.invalidate()
	}

	return added
}

// AddEdge inserts the directed edge (from, to), indexing both endpoints if
// needed. Returns whether the adjacency actually grew: a duplicate (from, to)
// pair is a no-op reporting false, and leaves memoized results intact.
//
// A nil from is rejected with ErrNilVertex. A nil to is a documented alias
// for AddVertex(from): the source vertex is registered and no edge is added.
// Complexity: O(1) amortized.
func (g *Digraph[V]) AddEdge(from, to V) (bool, error) {
	// 1) Validate endpoints before touching any state.
	if isNil(from) {
		return false, ErrNilVertex
	}
	if isNil(to) {
		g.AddVertex(from)

		return false, nil
	}

	// 2) Index both endpoints (idempotent).
	vi, _ := g.index.add(from)
	wi, _ := g.index.add(to)
	g.adj.grow(g.index.len())

	// 3) Insert into the out-edge set; duplicates stop here.
	if !g.adj.addEdge(vi, wi) {
		return false, nil
	}

	// 4) Record the accepted target and drop stale memoized results.
	g.edgeTargets = append(g.edgeTargets, to)
	g.memo.invalidate()

	return true, nil
}

// HasVertex reports whether v has ever been added.
// Complexity: O(1).
func (g *Digraph[V]) HasVertex(v V) bool {
	_, ok := g.index.lookup(v)

	return ok
}

// HasEdge reports whether the directed edge (from, to) was accepted.
// Complexity: O(1).
func (g *Digraph[V]) HasEdge(from, to V) bool {
	vi, ok := g.index.lookup(from)
	if !ok {
		return false
	}
	wi, ok := g.index.lookup(to)
	if !ok {
		return false
	}

	return g.adj.hasEdge(vi, wi)
}

// InDegree returns the number of distinct edges pointing at v.
// Returns ErrVertexNotFound if v was never added.
// Complexity: O(1).
func (g *Digraph[V]) InDegree(v V) (int, error) {
	i, ok := g.index.lookup(v)
	if !ok {
		return 0, ErrVertexNotFound
	}

	return g.adj.inDeg[i], nil
}

// OutDegree returns the size of v's out-edge set.
// Returns ErrVertexNotFound if v was never added.
// Complexity: O(1).
func (g *Digraph[V]) OutDegree(v V) (int, error) {
	i, ok := g.index.lookup(v)
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adj.out[i]), nil
}

// VertexCount reports the number of distinct vertices. Complexity: O(1).
func (g *Digraph[V]) VertexCount() int {
	return g.index.len()
}

// EdgeCount reports the number of accepted edges. Complexity: O(1).
func (g *Digraph[V]) EdgeCount() int {
	return len(g.edgeTargets)
}

// Vertices returns all vertices in index (first-seen) order.
// Complexity: O(V).
func (g *Digraph[V]) Vertices() []V {
	return append([]V(nil), g.index.vertexOf...)
}

// Edges returns every accepted edge, grouped by source in index order, each
// source's targets in insertion order.
// Complexity: O(V + E).
func (g *Digraph[V]) Edges() []Edge[V] {
	out := make([]Edge[V], 0, g.adj.edgeCount())
	for vi, targets := range g.adj.out {
		for _, wi := range targets {
			out = append(out, Edge[V]{From: g.index.vertexOf[vi], To: g.index.vertexOf[wi]})
		}
	}

	return out
}

// Clone returns an independent deep copy of the graph with identical index
// assignment and adjacency. Memoized results are recomputed lazily on the
// copy. Complexity: O(V + E).
func (g *Digraph[V]) Clone() *Digraph[V] {
	return &Digraph[V]{
		index:       g.index.clone(),
		adj:         g.adj.clone(),
		edgeTargets: append([]V(nil), g.edgeTargets...),
	}
}

// Stats is a cheap read-only snapshot of graph shape, for diagnostics and
// test assertions.
type Stats struct {
	VertexCount int // distinct vertices
	EdgeCount   int // accepted edges
	RootCount   int // vertices with in-degree 0
	LeafCount   int // vertices with no out-edges
}

// Stats computes a snapshot of the current graph shape.
// Complexity: O(V).
func (g *Digraph[V]) Stats() Stats {
	s := Stats{
		VertexCount: g.index.len(),
		EdgeCount:   len(g.edgeTargets),
	}
	for i := 0; i < g.index.len(); i++ {
		if g.adj.inDeg[i] == 0 {
			s.RootCount++
		}
		if len(g.adj.out[i]) == 0 {
			s.LeafCount++
		}
	}

	return s
}
