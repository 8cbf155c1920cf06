// Package digraph: canonical adjacency form and structural comparison.
//
// Two graphs are structurally equal iff they hold the same vertex set (by
// value equality, regardless of index assignment) and, per vertex, the same
// out-neighbor set. To make the comparison independent of edge insertion
// order, each vertex's out-edge list is canonicalized into an array of
// neighbor hashes sorted ascending; canonical arrays are then compared
// element-wise for the same vertex across both graphs.
//
// Vertex hashing uses hashstructure, which digests arbitrary Go values. A
// hash failure means the vertex type violates the hashability contract
// (e.g. it embeds a function value); that is a programming error and panics
// with ErrUnhashableVertex rather than returning.
package digraph

import (
	"fmt"
	"sort"

	"github.com/mitchellh/hashstructure/v2"
)

// fnvOffset and fnvPrime are the 64-bit FNV-1a parameters used to fold
// canonical arrays into a single digest.
const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211
)

// StructuralEqual reports whether g and other describe the same graph:
// equal vertex sets and, for every vertex, equal canonical out-edge arrays.
// Insertion order and index assignment never influence the result.
// Complexity: O(V + E log E) per graph on a cold canonical cache.
func (g *Digraph[V]) StructuralEqual(other *Digraph[V]) bool {
	if other == nil {
		return false
	}
	if g == other {
		return true
	}

	// 1) Vertex sets must coincide by value.
	if g.index.len() != other.index.len() {
		return false
	}
	for _, v := range g.index.vertexOf {
		if _, ok := other.index.lookup(v); !ok {
			return false
		}
	}

	// 2) Edge counts are a cheap early out before canonicalizing.
	if g.adj.edgeCount() != other.adj.edgeCount() {
		return false
	}

	// 3) Per-vertex canonical arrays must match element-wise.
	g.ensureCanon()
	other.ensureCanon()
	for gi, v := range g.index.vertexOf {
		oi, _ := other.index.lookup(v)
		a, b := g.memo.canon[gi], other.memo.canon[oi]
		if len(a) != len(b) {
			return false
		}
		for k := range a {
			if a[k] != b[k] {
				return false
			}
		}
	}

	return true
}

// StructuralHash returns a digest consistent with StructuralEqual: two
// structurally equal graphs hash identically no matter how they were built.
// Per-vertex records are folded commutatively, so neither insertion order
// nor index assignment leaks into the result.
// Complexity: O(V + E log E) on a cold canonical cache, O(V + E) after.
func (g *Digraph[V]) StructuralHash() uint64 {
	g.ensureCanon()

	var sum uint64
	for i := range g.index.vertexOf {
		// Fold the vertex hash with its sorted neighbor hashes; the inner
		// fold is order-sensitive but canonical arrays are already sorted.
		rec := fnvOffset ^ g.memo.vertexHash[i]
		rec *= fnvPrime
		for _, nh := range g.memo.canon[i] {
			rec ^= nh
			rec *= fnvPrime
		}
		sum += rec
	}

	return sum + uint64(g.index.len())
}

// ensureCanon recomputes the canonical adjacency form if it is stale.
func (g *Digraph[V]) ensureCanon() {
	if g.memo.canonFresh {
		return
	}

	n := g.index.len()
	vh := make([]uint64, n)
	for i, v := range g.index.vertexOf {
		vh[i] = hashVertex(v)
	}

	canon := make([][]uint64, n)
	for i, targets := range g.adj.out {
		if len(targets) == 0 {
			continue
		}
		row := make([]uint64, len(targets))
		for k, wi := range targets {
			row[k] = vh[wi]
		}
		sort.Slice(row, func(a, b int) bool { return row[a] < row[b] })
		canon[i] = row
	}

	g.memo.vertexHash = vh
	g.memo.canon = canon
	g.memo.canonFresh = true
}

// hashVertex digests a single vertex value, panicking on unhashable types.
func hashVertex[V comparable](v V) uint64 {
	h, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		panic(fmt.Errorf("%w: %v", ErrUnhashableVertex, err))
	}

	return h
}
