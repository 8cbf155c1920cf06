// Package refgraph layers forward-reference resolution over digraph: edges
// may be declared against a reference key — a cheap derived identifier of a
// vertex that does not exist yet — and reconciled with the real vertex later.
// This is the two-phase link pattern of build systems and linkers: declare
// now, resolve before the first read.
//
// A Resolver is parameterized by the vertex type V, the reference-key type
// R, and a pure projection deref: V → R which must be deterministic (equal
// vertices always yield equal keys). Internally the wrapped graph is indexed
// by reference keys; every real vertex occupies the index slot of its own
// deref key, so an edge declared against "k" and the vertex that later
// derefs to "k" share one index and one adjacency.
//
// Every read operation forces resolution first. Resolution drains the
// pending-vertex table in insertion order, binding each vertex to its key's
// index slot. If any key declared through the reference API remains
// unmatched, the read fails with an error satisfying
// errors.Is(err, ErrUnresolvedReference) that names the dangling keys.
// Resolution is not retried internally, but a matching vertex added after a
// failed read cures the keys for subsequent reads.
//
// Like digraph, a Resolver is single-threaded by contract: no internal
// locking, no concurrent use without external synchronization.
package refgraph
