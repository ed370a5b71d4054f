// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only facade for renderers and diagnostics.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of graph configuration and sizes.
type GraphStats struct {
	Directed  bool
	NodeCount int
	EdgeCount int
}

// Stats produces a deterministic snapshot of the graph configuration and
// catalog sizes.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return GraphStats{
		Directed:  g.directed,
		NodeCount: g.nodes.Len(),
		EdgeCount: len(g.edges),
	}
}

// Adjacency returns node ID → outgoing neighbor IDs, each list in edge
// insertion order. Nodes without outgoing edges map to an empty slice.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func (g *Graph) Adjacency() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, g.nodes.Len())
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		positions := g.outgoing[pair.Key]
		tos := make([]string, 0, len(positions))
		for _, pos := range positions {
			tos = append(tos, g.edges[pos].To)
		}
		out[pair.Key] = tos
	}

	return out
}
