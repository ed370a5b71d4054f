package search_test

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/search"
)

// ExampleEngine steps uniform-cost search and prints the fringe after each step.
func ExampleEngine() {
	g := core.NewGraph()
	_ = g.AddNode("S", 3)
	_ = g.AddNode("A", 2)
	_ = g.AddNode("B", 1)
	_ = g.AddNode("G", 0)
	_ = g.AddEdge("S", "A", 1)
	_ = g.AddEdge("S", "B", 4)
	_ = g.AddEdge("A", "G", 5)
	_ = g.AddEdge("B", "G", 1)

	eng, err := search.New(g,
		search.WithAlgorithm(search.UCS),
		search.WithConfig(search.Config{Start: "S", Goal: "G", DepthLimit: 10}),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	res, _ := eng.FirstStep()
	for res.Status == search.StillRunning {
		res, _ = eng.NextStep()
		fmt.Printf("fringe=[%s]\n", eng.Fringe())
	}
	fmt.Println(res.Path, eng.Expanded())
	// Output:
	// fringe=[A1 B2]
	// fringe=[B2 G3]
	// fringe=[G3 G4]
	// fringe=[G3]
	// [S B G] [S0 A1 B2 G4]
}
