package fringe_test

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/fringe"
)

// ExampleFringe shows that the policy picks the entry and the rest keep
// their display order.
func ExampleFringe() {
	f := fringe.New(nil)
	_ = f.Push(fringe.Entry{TreeNodeID: "B1", Cost: 4})
	_ = f.Push(fringe.Entry{TreeNodeID: "C2", Cost: 2})
	_ = f.Push(fringe.Entry{TreeNodeID: "D3", Cost: 9})

	e, _ := f.Pop(fringe.MinCost)
	fmt.Println(e.TreeNodeID, "|", f)
	// Output:
	// C2 | B1 D3
}
