package digraph_test

import (
	"fmt"

	"github.com/arloid/depgraph/digraph"
)

// ExampleDigraph_TopologicalOrder builds a small dependency DAG and prints
// a build order.
func ExampleDigraph_TopologicalOrder() {
	g := digraph.New[string]()
	// "parser depends on lexer" is the edge lexer→parser.
	_, _ = g.AddEdge("lexer", "parser")
	_, _ = g.AddEdge("parser", "typecheck")
	_, _ = g.AddEdge("lexer", "typecheck")

	order, ok := g.TopologicalOrder()
	fmt.Println(ok)
	fmt.Println(order)
	// Output:
	// true
	// [lexer parser typecheck]
}

// ExampleDigraph_Cycle shows cycle reporting as a closed walk.
func ExampleDigraph_Cycle() {
	g := digraph.New[string]()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("c", "a")

	cycle, found := g.Cycle()
	fmt.Println(found)
	fmt.Println(cycle)
	// Output:
	// true
	// [c b a c]
}
