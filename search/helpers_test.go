package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/search"
)

type nodeSpec struct {
	id string
	h  float64
}

type edgeSpec struct {
	from, to string
	cost     float64
}

// newGraph builds a directed graph from literal node and edge lists.
func newGraph(t *testing.T, nodes []nodeSpec, edges []edgeSpec) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range nodes {
		require.NoError(t, g.AddNode(n.id, n.h))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.cost))
	}

	return g
}

// abc is A→B→C with unit costs.
func abc(t *testing.T) *core.Graph {
	return newGraph(t,
		[]nodeSpec{{"A", 2}, {"B", 1}, {"C", 0}},
		[]edgeSpec{{"A", "B", 1}, {"B", "C", 1}})
}

// diamond separates every policy:
//
//	S→A (4), S→B (1), A→G (4), B→G (6); h: S5 A1 B4 G0
func diamond(t *testing.T) *core.Graph {
	return newGraph(t,
		[]nodeSpec{{"S", 5}, {"A", 1}, {"B", 4}, {"G", 0}},
		[]edgeSpec{{"S", "A", 4}, {"S", "B", 1}, {"A", "G", 4}, {"B", "G", 6}})
}

func cfg(start, goal string, limit int) search.Config {
	return search.Config{Start: start, Goal: goal, DepthLimit: limit}
}

func newEngine(t *testing.T, g *core.Graph, a search.Algorithm, c search.Config, opts ...search.Option) *search.Engine {
	t.Helper()
	opts = append([]search.Option{search.WithAlgorithm(a), search.WithConfig(c)}, opts...)
	e, err := search.New(g, opts...)
	require.NoError(t, err)

	return e
}

func intp(v int) *int { return &v }
