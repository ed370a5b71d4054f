// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepsearch/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls from one hub
// are safe and every neighbor appears exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	require.NoError(t, g.AddNode("X", 0))
	for i := 0; i < num; i++ {
		require.NoError(t, g.AddNode(fmt.Sprintf("V%d", i), 0))
	}

	var wg sync.WaitGroup
	wg.Add(num)
	errs := make([]error, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs[id] = g.AddEdge("X", fmt.Sprintf("V%d", id), float64(id))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentReadersAndClone validates concurrent reads and clones do not race.
func TestConcurrentReadersAndClone(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))
	require.NoError(t, g.AddNode("A", 0))
	for i := 0; i < 50; i++ {
		id := fmt.Sprintf("N%d", i)
		require.NoError(t, g.AddNode(id, 1))
		require.NoError(t, g.AddEdge("A", id, 1))
	}

	const readers = 50
	const cloners = 20
	var wg sync.WaitGroup
	wg.Add(readers + cloners)
	counts := make([]int, readers)

	for i := 0; i < readers; i++ {
		go func(slot int) {
			defer wg.Done()
			nbs, _ := g.Neighbors("A")
			counts[slot] = len(nbs)
		}(i)
	}
	for i := 0; i < cloners; i++ {
		go func() {
			defer wg.Done()
			_ = g.Clone()
		}()
	}
	wg.Wait()

	for _, c := range counts {
		require.Equal(t, 50, c)
	}
}
