// Package refgraph: Resolver type, sentinel errors, and the constructor.
package refgraph

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/arloid/depgraph/digraph"
)

// Sentinel errors for resolver operations.
var (
	// ErrNilVertex indicates a nil "from" vertex was passed to an
	// edge-adding operation.
	ErrNilVertex = errors.New("refgraph: nil vertex")

	// ErrNilDeref indicates New was called without a projection function.
	ErrNilDeref = errors.New("refgraph: nil deref function")

	// ErrUnresolvedReference indicates one or more reference keys were never
	// matched by a real vertex before a read was requested. Match with
	// errors.Is; the concrete *UnresolvedError carries the dangling keys.
	ErrUnresolvedReference = errors.New("refgraph: unresolved references")
)

// UnresolvedError reports the reference keys still dangling after
// resolution, in first-declared order.
type UnresolvedError[R comparable] struct {
	Keys []R
}

// Error implements the error interface.
func (e *UnresolvedError[R]) Error() string {
	return fmt.Sprintf("refgraph: unresolved references: %v", e.Keys)
}

// Is makes the error satisfy errors.Is(err, ErrUnresolvedReference).
func (e *UnresolvedError[R]) Is(target error) bool {
	return target == ErrUnresolvedReference
}

// Resolver wraps a Digraph indexed by reference keys and reconciles pending
// vertices against pending keys before every read.
//
// The zero value is not usable; construct with New.
type Resolver[V comparable, R comparable] struct {
	deref func(V) R           // pure projection: vertex -> reference key
	g     *digraph.Digraph[R] // underlying graph, indexed by key
	bound map[R]V             // keys promoted to their real vertex

	// pendingVerts holds vertices declared through the vertex API whose
	// keys have not yet been reconciled, in insertion order.
	pendingVerts []V

	// pendingRefs holds keys declared through the reference API that no
	// vertex has matched yet; pendingOrder preserves first-declared order
	// for deterministic diagnostics.
	pendingRefs  map[R]struct{}
	pendingOrder []R
}

// New creates a Resolver over an empty graph. The projection fn must be
// deterministic: the same vertex value must always yield the same key.
// Options are forwarded to the underlying digraph constructor.
func New[V comparable, R comparable](fn func(V) R, opts ...digraph.Option) (*Resolver[V, R], error) {
	if fn == nil {
		return nil, ErrNilDeref
	}

	return &Resolver[V, R]{
		deref:       fn,
		g:           digraph.New[R](opts...),
		bound:       make(map[R]V),
		pendingRefs: make(map[R]struct{}),
	}, nil
}

// isNil reports whether v holds a nil pointer-shaped value; comparable
// types can only be nil through pointers, channels, or interfaces.
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
