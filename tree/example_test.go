package tree_test

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/tree"
)

// ExampleTree grows a two-level tree and reconstructs the path to a leaf.
func ExampleTree() {
	g := core.NewGraph()
	_ = g.AddNode("S", 3)
	_ = g.AddNode("M", 1)
	_ = g.AddNode("G", 0)

	t := tree.New(g)
	_, _ = t.AddNode("S0", 3, 0, "", "S")
	_, _ = t.AddNode("M1", 1, 2, "S0", "M")
	leaf, _ := t.AddNode("G2", 0, 4, "M1", "G")

	path, _ := t.GraphPath(leaf.ID)
	fmt.Println(path, leaf.Depth, leaf.Cost)

	_, err := t.AddNode("X3", 0, 1, "M1", "missing")
	fmt.Println(err)
	// Output:
	// [S M G] 2 6
	// tree: graph node not found: "missing"
}
