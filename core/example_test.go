package core_test

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

// ExampleGraph demonstrates creation, rejected inserts and ordered neighbors.
func ExampleGraph() {
	g := core.NewGraph(core.WithDirected(false))

	_ = g.AddNode("A", 2)
	_ = g.AddNode("B", 1)
	_ = g.AddNode("C", 0)
	_ = g.AddEdge("A", "C", 4)
	_ = g.AddEdge("A", "B", 1)

	fmt.Println("self-loop:", g.AddEdge("B", "B", 1))
	fmt.Println("negative heuristic:", g.AddNode("D", -1))

	arcs, _ := g.Neighbors("A")
	for _, a := range arcs {
		fmt.Printf("A→%s cost %.0f\n", a.To, a.Cost)
	}
	fmt.Println("mirror C→A:", g.HasEdge("C", "A"))

	// Output:
	// self-loop: core: self-loop not allowed
	// negative heuristic: core: heuristic must be non-negative
	// A→C cost 4
	// A→B cost 1
	// mirror C→A: true
}
