// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/FindEdge/HasEdge/Edges/EdgeCount/Neighbors.
// Determinism:
//   - Edges() and Neighbors() return edges in insertion order.
// Concurrency:
//   - Mutations under the write lock.
//   - Read queries under the read lock.

package core

import "math"

// validCost reports whether c is usable as an edge cost (non-negative, not NaN).
func validCost(c float64) bool {
	return c >= 0 && !math.IsNaN(c)
}

// AddEdge creates an edge from→to with the given cost.
//
// Steps:
//  1. Validate loop and cost.
//  2. Lock; both endpoints must exist.
//  3. Reject an existing (from,to) pair.
//  4. Append the edge; for undirected graphs also append to→from unless present.
//
// Errors:
//   - ErrLoopNotAllowed, ErrNegativeCost, ErrNodeNotFound, ErrDuplicateEdge.
//
// A rejected insert leaves the graph unchanged.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, cost float64) error {
	if from == to {
		return ErrLoopNotAllowed
	}
	if !validCost(cost) {
		return ErrNegativeCost
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes.Get(from); !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes.Get(to); !ok {
		return ErrNodeNotFound
	}
	if _, exists := g.edgeIndex.Get(edgeKey{from, to}); exists {
		return ErrDuplicateEdge
	}

	g.appendEdge(from, to, cost)
	if !g.directed {
		if _, exists := g.edgeIndex.Get(edgeKey{to, from}); !exists {
			g.appendEdge(to, from, cost)
		}
	}

	return nil
}

// appendEdge stores one edge; caller holds the write lock and has validated it.
func (g *Graph) appendEdge(from, to string, cost float64) {
	pos := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Cost: cost})
	g.edgeIndex.Set(edgeKey{from, to}, pos)
	g.outgoing[from] = append(g.outgoing[from], pos)
}

// FindEdge returns the insertion index of edge from→to, or NotFound.
// It never mutates the graph.
func (g *Graph) FindEdge(from, to string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	pos, ok := g.edgeIndex.Get(edgeKey{from, to})
	if !ok {
		return NotFound
	}

	return pos
}

// HasEdge reports whether an edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	return g.FindEdge(from, to) != NotFound
}

// Edge returns the edge from→to.
func (g *Graph) Edge(from, to string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	pos, ok := g.edgeIndex.Get(edgeKey{from, to})
	if !ok {
		return Edge{}, false
	}

	return g.edges[pos], true
}

// Neighbors returns every outgoing edge of id as (to, cost) pairs, in edge
// insertion order.
//
// Errors:
//   - ErrNodeNotFound if id is unknown.
//
// Complexity: O(out-degree).
func (g *Graph) Neighbors(id string) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes.Get(id); !ok {
		return nil, ErrNodeNotFound
	}
	positions := g.outgoing[id]
	out := make([]Arc, 0, len(positions))
	for _, pos := range positions {
		e := g.edges[pos]
		out = append(out, Arc{To: e.To, Cost: e.Cost})
	}

	return out, nil
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of stored (directed) edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
