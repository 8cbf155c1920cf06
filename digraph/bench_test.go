package digraph_test

import (
	"testing"

	"github.com/arloid/depgraph/digraph"
)

// buildChain creates a linear chain 0→1→...→n.
func buildChain(n int) *digraph.Digraph[int] {
	g := digraph.New[int](digraph.WithVertexCapacity(n + 1))
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(i, i+1)
	}

	return g
}

// BenchmarkTopologicalOrder_Cold rebuilds the DFS pass every iteration.
func BenchmarkTopologicalOrder_Cold(b *testing.B) {
	g := buildChain(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Duplicate edge keeps the structure fixed; clone to defeat the memo.
		c := g.Clone()
		if _, ok := c.TopologicalOrder(); !ok {
			b.Fatal("unexpected cycle")
		}
	}
}

// BenchmarkTopologicalOrder_Memoized measures the cached read path.
func BenchmarkTopologicalOrder_Memoized(b *testing.B) {
	g := buildChain(10_000)
	if _, ok := g.TopologicalOrder(); !ok {
		b.Fatal("unexpected cycle")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := g.TopologicalOrder(); !ok {
			b.Fatal("unexpected cycle")
		}
	}
}

// BenchmarkStructuralHash measures canonicalization plus folding.
func BenchmarkStructuralHash(b *testing.B) {
	g := buildChain(2_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone().StructuralHash()
	}
}
