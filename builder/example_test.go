package builder_test

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/builder"
	"github.com/katalvlaran/stepsearch/core"
)

// ExampleBuildGraph builds a 2×2 grid and prints its neighbours.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantCost(2)}, builder.Grid(2, 2))
	if err != nil {
		fmt.Println(err)
		return
	}
	arcs, _ := g.Neighbors(builder.GridID(0, 0))
	fmt.Println(g.NodeIDs())
	fmt.Println(arcs)

	_, err = builder.BuildGraph([]core.GraphOption{core.WithDirected(false)}, nil, builder.Classroom(0.5))
	fmt.Println(err)
	// Output:
	// [0,0 0,1 1,0 1,1]
	// [{0,1 2} {1,0 2}]
	// BuildGraph: Classroom: rng is required: builder: rng is required
}
