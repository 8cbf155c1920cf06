// Package refgraph: mutators, the resolve step, and resolution-forcing reads.
package refgraph

import "github.com/arloid/depgraph/digraph"

// AddVertex declares a real vertex. Its deref key occupies (or joins) an
// index slot immediately; the binding of slot to vertex happens at the next
// resolve. Returns whether the underlying graph changed.
// Complexity: O(1) amortized.
func (r *Resolver[V, R]) AddVertex(v V) (bool, error) {
	if isNil(v) {
		return false, ErrNilVertex
	}
	changed := r.g.AddVertex(r.deref(v))
	r.pendingVerts = append(r.pendingVerts, v)

	return changed, nil
}

// AddEdge declares an edge between two real vertices. A nil from is
// rejected with ErrNilVertex; a nil to is the documented alias for
// AddVertex(from). Returns whether the underlying adjacency grew.
// Complexity: O(1) amortized.
func (r *Resolver[V, R]) AddEdge(from, to V) (bool, error) {
	if isNil(from) {
		return false, ErrNilVertex
	}
	if isNil(to) {
		_, err := r.AddVertex(from)

		return false, err
	}
	// Delegate first: a rejected mutation must leave no pending state.
	grew, err := r.g.AddEdge(r.deref(from), r.deref(to))
	if err != nil {
		return false, err
	}
	r.pendingVerts = append(r.pendingVerts, from, to)

	return grew, nil
}

// AddVertexRef declares a vertex by reference key alone. The key must
// eventually be matched by a real vertex whose deref equals it, or any
// subsequent read fails. Returns whether the underlying graph changed.
// Complexity: O(1) amortized.
func (r *Resolver[V, R]) AddVertexRef(ref R) (bool, error) {
	if isNil(ref) {
		return false, ErrNilVertex
	}
	changed := r.g.AddVertex(ref)
	r.pend(ref)

	return changed, nil
}

// AddEdgeRef declares an edge from a real vertex to a reference key. A nil
// from is rejected with ErrNilVertex; a nil ref is the documented alias for
// AddVertex(from). Returns whether the underlying adjacency grew.
// Complexity: O(1) amortized.
func (r *Resolver[V, R]) AddEdgeRef(from V, ref R) (bool, error) {
	if isNil(from) {
		return false, ErrNilVertex
	}
	if isNil(ref) {
		_, err := r.AddVertex(from)

		return false, err
	}
	// Delegate first: a rejected mutation must leave no pending state, or a
	// key nothing can cure would poison every later read.
	grew, err := r.g.AddEdge(r.deref(from), ref)
	if err != nil {
		return false, err
	}
	r.pendingVerts = append(r.pendingVerts, from)
	r.pend(ref)

	return grew, nil
}

// pend records ref as awaiting a matching vertex. A key already promoted to
// a real vertex is in its terminal resolved state and is not re-pended.
func (r *Resolver[V, R]) pend(ref R) {
	if _, ok := r.bound[ref]; ok {
		return
	}
	if _, ok := r.pendingRefs[ref]; ok {
		return
	}
	r.pendingRefs[ref] = struct{}{}
	r.pendingOrder = append(r.pendingOrder, ref)
}

// resolve reconciles every pending vertex with the key space of the
// underlying graph: each vertex claims the index slot of its deref key and
// clears that key from the pending set. If keys remain unmatched afterward,
// resolve fails with *UnresolvedError naming them in first-declared order.
// Pending vertices are drained either way; unmatched keys stay pending so a
// later matching vertex can cure them.
// Complexity: O(pending vertices + unresolved keys).
func (r *Resolver[V, R]) resolve() error {
	for _, v := range r.pendingVerts {
		key := r.deref(v)
		delete(r.pendingRefs, key)
		if r.g.HasVertex(key) {
			r.bound[key] = v
		}
	}
	r.pendingVerts = r.pendingVerts[:0]

	if len(r.pendingRefs) > 0 {
		// Report in declaration order, filtered down to the still-dangling.
		keys := make([]R, 0, len(r.pendingRefs))
		for _, ref := range r.pendingOrder {
			if _, ok := r.pendingRefs[ref]; ok {
				keys = append(keys, ref)
			}
		}

		return &UnresolvedError[R]{Keys: keys}
	}
	r.pendingOrder = r.pendingOrder[:0]

	return nil
}

// vertexOf maps a resolved key back to its real vertex.
func (r *Resolver[V, R]) vertexOf(key R) V {
	return r.bound[key]
}

// vertices maps a slice of resolved keys back to real vertices.
func (r *Resolver[V, R]) vertices(keys []R) []V {
	out := make([]V, len(keys))
	for i, k := range keys {
		out[i] = r.bound[k]
	}

	return out
}

// Vertices resolves, then reports all vertices in index order.
func (r *Resolver[V, R]) Vertices() ([]V, error) {
	if err := r.resolve(); err != nil {
		return nil, err
	}

	return r.vertices(r.g.Vertices()), nil
}

// Edges resolves, then reports every accepted edge with both endpoints
// promoted to real vertices.
func (r *Resolver[V, R]) Edges() ([]digraph.Edge[V], error) {
	if err := r.resolve(); err != nil {
		return nil, err
	}

	keyed := r.g.Edges()
	out := make([]digraph.Edge[V], len(keyed))
	for i, e := range keyed {
		out[i] = digraph.Edge[V]{From: r.vertexOf(e.From), To: r.vertexOf(e.To)}
	}

	return out, nil
}

// InDegree resolves, then reports the in-degree of v.
// Returns digraph.ErrVertexNotFound if v was never declared.
func (r *Resolver[V, R]) InDegree(v V) (int, error) {
	if err := r.resolve(); err != nil {
		return 0, err
	}

	return r.g.InDegree(r.deref(v))
}

// OutDegree resolves, then reports the out-degree of v.
// Returns digraph.ErrVertexNotFound if v was never declared.
func (r *Resolver[V, R]) OutDegree(v V) (int, error) {
	if err := r.resolve(); err != nil {
		return 0, err
	}

	return r.g.OutDegree(r.deref(v))
}

// Cycle resolves, then reports a back-edge cycle as a closed walk of real
// vertices, if one exists.
func (r *Resolver[V, R]) Cycle() ([]V, bool, error) {
	if err := r.resolve(); err != nil {
		return nil, false, err
	}
	keys, found := r.g.Cycle()
	if !found {
		return nil, false, nil
	}

	return r.vertices(keys), true, nil
}

// TopologicalOrder resolves, then reports the topological order of real
// vertices; the boolean is false when the graph is cyclic.
func (r *Resolver[V, R]) TopologicalOrder() ([]V, bool, error) {
	if err := r.resolve(); err != nil {
		return nil, false, err
	}
	keys, ok := r.g.TopologicalOrder()
	if !ok {
		return nil, false, nil
	}

	return r.vertices(keys), true, nil
}

// VertexCount resolves, then reports the number of distinct index slots.
func (r *Resolver[V, R]) VertexCount() (int, error) {
	if err := r.resolve(); err != nil {
		return 0, err
	}

	return r.g.VertexCount(), nil
}

// EdgeCount resolves, then reports the number of accepted edges.
func (r *Resolver[V, R]) EdgeCount() (int, error) {
	if err := r.resolve(); err != nil {
		return 0, err
	}

	return r.g.EdgeCount(), nil
}
