package digraph

// edgeKey identifies a directed (from, to) index pair for deduplication.
type edgeKey struct {
	from, to int
}

// adjacencyStore holds per-vertex out-edge lists (insertion-ordered,
// deduplicated) and in-degree counters, addressed by dense vertex index.
// It is owned and mutated exclusively by Digraph.
//
// Invariant: inDeg[w] equals the number of distinct v with w in out[v].
type adjacencyStore struct {
	out   [][]int              // out[v] = target indices in insertion order
	inDeg []int                // inDeg[w] = distinct incoming edge count
	seen  map[edgeKey]struct{} // accepted (from, to) pairs
}

// init prepares the store with an optional capacity hint.
func (a *adjacencyStore) init(capHint int) {
	a.seen = make(map[edgeKey]struct{}, capHint)
	if capHint > 0 {
		a.out = make([][]int, 0, capHint)
		a.inDeg = make([]int, 0, capHint)
	}
}

// grow extends the per-vertex arrays to cover indices [0, n).
func (a *adjacencyStore) grow(n int) {
	for len(a.out) < n {
		a.out = append(a.out, nil)
		a.inDeg = append(a.inDeg, 0)
	}
}

// hasEdge reports whether the (from, to) pair was previously accepted.
// Complexity: O(1).
func (a *adjacencyStore) hasEdge(from, to int) bool {
	_, ok := a.seen[edgeKey{from, to}]

	return ok
}

// addEdge inserts to into from's out-edge list if the pair is new, updating
// the in-degree counter. Returns whether the adjacency grew.
// Complexity: O(1) amortized.
func (a *adjacencyStore) addEdge(from, to int) bool {
	k := edgeKey{from, to}
	if _, ok := a.seen[k]; ok {
		return false
	}
	a.seen[k] = struct{}{}
	a.out[from] = append(a.out[from], to)
	a.inDeg[to]++

	return true
}

// edgeCount reports the number of distinct accepted pairs.
func (a *adjacencyStore) edgeCount() int {
	return len(a.seen)
}

// clone produces an independent deep copy.
func (a *adjacencyStore) clone() adjacencyStore {
	out := adjacencyStore{
		out:   make([][]int, len(a.out)),
		inDeg: append([]int(nil), a.inDeg...),
		seen:  make(map[edgeKey]struct{}, len(a.seen)),
	}
	for v, targets := range a.out {
		out.out[v] = append([]int(nil), targets...)
	}
	for k := range a.seen {
		out.seen[k] = struct{}{}
	}

	return out
}
