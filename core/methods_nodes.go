// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - NodeIDs() and Nodes() return nodes in insertion order.
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "math"

// validHeuristic reports whether h is usable as a heuristic (non-negative, not NaN).
func validHeuristic(h float64) bool {
	return h >= 0 && !math.IsNaN(h)
}

// AddNode inserts a node with the given heuristic.
//
// Implementation:
//   - Stage 1: Validate ID and heuristic.
//   - Stage 2: Under write lock, reject duplicates, then append to the catalog.
//
// Errors:
//   - ErrEmptyNodeID, ErrNegativeHeuristic, ErrDuplicateNode.
//
// A rejected insert leaves the graph unchanged.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(id string, heuristic float64) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if !validHeuristic(heuristic) {
		return ErrNegativeHeuristic
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes.Get(id); exists {
		return ErrDuplicateNode
	}
	g.nodes.Set(id, &nodeRecord{
		node:  Node{ID: id, Heuristic: heuristic},
		index: g.nodes.Len(),
	})

	return nil
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes.Get(id)

	return ok
}

// FindNode returns the insertion index of id, or NotFound.
// It never mutates the graph.
func (g *Graph) FindNode(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rec, ok := g.nodes.Get(id)
	if !ok {
		return NotFound
	}

	return rec.index
}

// Node returns a copy of the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rec, ok := g.nodes.Get(id)
	if !ok {
		return Node{}, false
	}

	return rec.node, true
}

// Heuristic returns the heuristic value of node id.
func (g *Graph) Heuristic(id string) (float64, bool) {
	n, ok := g.Node(id)

	return n.Heuristic, ok
}

// Nodes returns copies of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Node, 0, g.nodes.Len())
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value.node)
	}

	return out
}

// NodeIDs returns all node IDs in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, g.nodes.Len())
	for pair := g.nodes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes.Len()
}
