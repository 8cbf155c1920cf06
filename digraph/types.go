// Package digraph: central types, sentinel errors, options, and the
// constructor. Algorithms live in dfs.go; mutators and accessors in
// methods.go; the canonical form behind structural equality in canon.go.
package digraph

import (
	"errors"
	"reflect"
)

// Sentinel errors for digraph operations.
var (
	// ErrNilVertex indicates a nil "from" vertex was passed to an
	// edge-adding operation. Only pointer-shaped vertex types (pointers,
	// interfaces, channels) can trigger it.
	ErrNilVertex = errors.New("digraph: nil vertex")

	// ErrVertexNotFound indicates a degree query referenced a vertex that
	// was never added to the graph.
	ErrVertexNotFound = errors.New("digraph: vertex not found")

	// ErrUnhashableVertex indicates a vertex value could not be hashed for
	// structural comparison. This is a programming error (the vertex type
	// violates the hashability contract) and is surfaced as a panic value,
	// never as a returned error.
	ErrUnhashableVertex = errors.New("digraph: unhashable vertex")
)

// Edge is a directed (From, To) vertex pair as reported by Edges.
type Edge[V comparable] struct {
	From V
	To   V
}

// Option configures a Digraph at construction time.
type Option func(*config)

// config holds construction-time settings.
type config struct {
	vertexCapacity int // preallocation hint for index and adjacency storage
}

// WithVertexCapacity returns an Option that preallocates internal storage
// for n vertices. Values below zero are ignored.
func WithVertexCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.vertexCapacity = n
		}
	}
}

// Digraph is an append-only directed graph over comparable vertex values.
//
// The zero value is not usable; construct with New. Not safe for concurrent
// use — see the package documentation.
type Digraph[V comparable] struct {
	index vertexIndex[V] // value <-> dense index mapping
	adj   adjacencyStore // out-edge lists and in-degree counters

	// edgeTargets records the target of every accepted edge in insertion
	// order. Duplicate (from, to) submissions are rejected before reaching
	// it, so its length is the distinct-edge count.
	edgeTargets []V

	memo memoCache[V] // lazily recomputed DFS and canonical-form results
}

// New creates an empty Digraph with the given options.
// Complexity: O(1), or O(n) when WithVertexCapacity(n) is supplied.
func New[V comparable](opts ...Option) *Digraph[V] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Digraph[V]{}
	g.index.init(cfg.vertexCapacity)
	g.adj.init(cfg.vertexCapacity)

	return g
}

// isNil reports whether v holds a nil pointer-shaped value. Vertex types
// constrained by comparable can only be nil through pointers, channels,
// interfaces, or unsafe pointers.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}

	return false
}
