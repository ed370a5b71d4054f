// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Directed reports whether AddEdge stores edges one-way only.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Clone returns a deep copy of the Graph: configuration, nodes and edges,
// preserving insertion order.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithDirected(g.directed))
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		rec := *pair.Value
		clone.nodes.Set(pair.Key, &rec)
	}
	for _, e := range g.edges {
		clone.appendEdge(e.From, e.To, e.Cost)
	}

	return clone
}

// Clear resets the graph to an empty state while preserving directedness.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.init()
}
