// Package core provides the state-space Graph used by the step-wise search
// engine: nodes with a non-negative heuristic and weighted, one-way edges.
//
// The Graph G = (V,E) has these properties:
//
//   - Directed by default; WithDirected(false) mirrors every AddEdge(u,v,c)
//     as v→u with the same cost (unless v→u already exists).
//   - No self-loops, at most one edge per ordered (from,to) pair.
//   - Heuristics and costs are never negative; NaN is rejected as well.
//   - Deterministic iteration — Nodes(), Edges() and Neighbors() follow
//     insertion order. The search expands children in this order, so it
//     decides tie-breaks in the fringe.
//   - A single sync.RWMutex guards the catalogs, so renderers may read while
//     the engine owns the graph.
//
// Invalid inserts are rejected with a sentinel error and leave the graph
// unchanged:
//
//	AddNode(id, h)        // ErrEmptyNodeID, ErrNegativeHeuristic, ErrDuplicateNode
//	AddEdge(from, to, c)  // ErrLoopNotAllowed, ErrNegativeCost, ErrNodeNotFound, ErrDuplicateEdge
//
// Lookups never mutate and return NotFound (-1) instead of failing:
//
//	FindNode(id) int          // O(1) insertion index
//	FindEdge(from, to) int    // O(1) insertion index
//	Neighbors(id) ([]Arc, error)
//
// Example:
//
//	g := core.NewGraph(core.WithDirected(false))
//	_ = g.AddNode("A", 2)
//	_ = g.AddNode("B", 0)
//	_ = g.AddEdge("A", "B", 3) // also stores B→A
package core
