package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloid/depgraph/digraph"
)

// item is a pointer-shaped vertex type used to exercise nil handling.
type item struct {
	id string
}

// TestAddVertex_ChangeReporting verifies fresh vertices report true and
// duplicates report false without growing the graph.
func TestAddVertex_ChangeReporting(t *testing.T) {
	g := digraph.New[string]()

	assert.True(t, g.AddVertex("a"))
	assert.False(t, g.AddVertex("a"))
	assert.True(t, g.AddVertex("b"))
	assert.Equal(t, 2, g.VertexCount())
}

// TestAddEdge_NilFrom ensures a nil source is rejected with ErrNilVertex
// before any mutation.
func TestAddEdge_NilFrom(t *testing.T) {
	g := digraph.New[*item]()

	grew, err := g.AddEdge(nil, &item{id: "x"})
	assert.False(t, grew)
	assert.ErrorIs(t, err, digraph.ErrNilVertex)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

// TestAddEdge_NilToAliasesAddVertex confirms the documented alias: a nil
// target registers the source vertex and adds no edge.
func TestAddEdge_NilToAliasesAddVertex(t *testing.T) {
	g := digraph.New[*item]()
	x := &item{id: "x"}

	grew, err := g.AddEdge(x, nil)
	require.NoError(t, err)
	assert.False(t, grew)
	assert.True(t, g.HasVertex(x))
	assert.Equal(t, 0, g.EdgeCount())

	out, err := g.OutDegree(x)
	require.NoError(t, err)
	assert.Zero(t, out)
}

// TestAddEdge_DuplicatePair verifies resubmitting an accepted (from, to)
// pair is a silent no-op: no growth, no second edge target.
func TestAddEdge_DuplicatePair(t *testing.T) {
	g := digraph.New[string]()

	grew, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	assert.True(t, grew)

	grew, err = g.AddEdge("a", "b")
	require.NoError(t, err)
	assert.False(t, grew)
	assert.Equal(t, 1, g.EdgeCount())

	in, err := g.InDegree("b")
	require.NoError(t, err)
	assert.Equal(t, 1, in)
}

// TestDegrees covers in/out degree accounting and the NotFound failure mode.
func TestDegrees(t *testing.T) {
	g := digraph.New[string]()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("a", "c")
	_, _ = g.AddEdge("c", "b")

	out, err := g.OutDegree("a")
	require.NoError(t, err)
	assert.Equal(t, 2, out)

	in, err := g.InDegree("b")
	require.NoError(t, err)
	assert.Equal(t, 2, in)

	in, err = g.InDegree("a")
	require.NoError(t, err)
	assert.Zero(t, in)

	_, err = g.InDegree("ghost")
	assert.ErrorIs(t, err, digraph.ErrVertexNotFound)
	_, err = g.OutDegree("ghost")
	assert.ErrorIs(t, err, digraph.ErrVertexNotFound)
}

// TestVertices_InsertionOrder ensures Vertices reports first-seen order,
// including endpoints indexed implicitly by AddEdge.
func TestVertices_InsertionOrder(t *testing.T) {
	g := digraph.New[string]()
	g.AddVertex("m")
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "m")

	assert.Equal(t, []string{"m", "a", "b"}, g.Vertices())
}

// TestEdges_Enumeration checks Edges reports accepted pairs grouped by
// source index with targets in insertion order.
func TestEdges_Enumeration(t *testing.T) {
	g := digraph.New[string]()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("a", "c")
	_, _ = g.AddEdge("c", "b")

	want := []digraph.Edge[string]{
		{From: "a", To: "b"},
		{From: "a", To: "c"},
		{From: "c", To: "b"},
	}
	assert.Equal(t, want, g.Edges())
	assert.True(t, g.HasEdge("a", "c"))
	assert.False(t, g.HasEdge("b", "a"))
	assert.False(t, g.HasEdge("a", "ghost"))
}

// TestClone_Independence verifies mutating a clone never leaks into the
// original, and vice versa.
func TestClone_Independence(t *testing.T) {
	g := digraph.New[string]()
	_, _ = g.AddEdge("a", "b")

	c := g.Clone()
	_, _ = c.AddEdge("b", "c")

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
	assert.False(t, g.HasVertex("c"))
	assert.True(t, g.StructuralEqual(g.Clone()))
}

// TestStats exercises the shape snapshot on a small DAG.
func TestStats(t *testing.T) {
	g := digraph.New[string]()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("a", "c")
	g.AddVertex("iso")

	s := g.Stats()
	assert.Equal(t, 4, s.VertexCount)
	assert.Equal(t, 2, s.EdgeCount)
	assert.Equal(t, 2, s.RootCount) // a and iso
	assert.Equal(t, 3, s.LeafCount) // b, c, iso
}

// TestWithVertexCapacity is a smoke test: the hint must not change behavior.
func TestWithVertexCapacity(t *testing.T) {
	g := digraph.New[int](digraph.WithVertexCapacity(64))
	for i := 0; i < 10; i++ {
		_, err := g.AddEdge(i, i+1)
		require.NoError(t, err)
	}
	assert.Equal(t, 11, g.VertexCount())
	assert.Equal(t, 10, g.EdgeCount())
}
