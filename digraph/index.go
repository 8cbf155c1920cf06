package digraph

// vertexIndex maintains the bidirectional mapping between vertex values and
// dense integer indices. Indices are assigned in first-seen order starting at
// 0, with no gaps and no reuse; the mapping only ever grows.
//
// Invariant: indexOf and vertexOf are mutual inverses at all times.
type vertexIndex[V comparable] struct {
	indexOf  map[V]int // value -> index
	vertexOf []V       // index -> value
}

// init prepares the maps with an optional capacity hint.
func (ix *vertexIndex[V]) init(capHint int) {
	ix.indexOf = make(map[V]int, capHint)
	if capHint > 0 {
		ix.vertexOf = make([]V, 0, capHint)
	}
}

// add returns the index of v, assigning a fresh one if v is unseen.
// The second result reports whether a new index was created.
// Complexity: O(1) amortized.
func (ix *vertexIndex[V]) add(v V) (int, bool) {
	if i, ok := ix.indexOf[v]; ok {
		return i, false
	}
	i := len(ix.vertexOf)
	ix.indexOf[v] = i
	ix.vertexOf = append(ix.vertexOf, v)

	return i, true
}

// lookup returns the index of v, if v has ever been added.
func (ix *vertexIndex[V]) lookup(v V) (int, bool) {
	i, ok := ix.indexOf[v]

	return i, ok
}

// len reports the number of indexed vertices.
func (ix *vertexIndex[V]) len() int {
	return len(ix.vertexOf)
}

// clone produces an independent copy with identical index assignment.
func (ix *vertexIndex[V]) clone() vertexIndex[V] {
	out := vertexIndex[V]{
		indexOf:  make(map[V]int, len(ix.indexOf)),
		vertexOf: append([]V(nil), ix.vertexOf...),
	}
	for v, i := range ix.indexOf {
		out.indexOf[v] = i
	}

	return out
}
