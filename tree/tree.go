package tree

import (
	"fmt"
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// AddNode inserts a tree node and derives its depth and cost from the parent.
//
// Validation order: heuristic, edge cost, ID, uniqueness, graph reference,
// parent. An empty parentID creates the root (only once per tree).
// A rejected insert leaves the tree unchanged.
func (t *Tree) AddNode(id string, heuristic, edgeCost float64, parentID, graphNodeID string) (*Node, error) {
	if heuristic < 0 || math.IsNaN(heuristic) {
		return nil, ErrNegativeHeuristic
	}
	if edgeCost < 0 || math.IsNaN(edgeCost) {
		return nil, ErrNegativeCost
	}
	if id == "" {
		return nil, ErrEmptyID
	}
	if _, exists := t.nodes.Get(id); exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	if t.graph != nil && !t.graph.HasNode(graphNodeID) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGraphNode, graphNodeID)
	}

	n := &Node{
		ID:          id,
		GraphNodeID: graphNodeID,
		ParentID:    parentID,
		Heuristic:   heuristic,
	}

	if parentID == "" {
		if t.rootID != "" {
			return nil, fmt.Errorf("%w: %q", ErrRootExists, t.rootID)
		}
		t.rootID = id
	} else {
		parent, ok := t.nodes.Get(parentID)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrParentNotFound, parentID)
		}
		n.Depth = parent.Depth + 1
		n.Cost = parent.Cost + edgeCost
		parent.ChildIDs = append(parent.ChildIDs, id)
	}

	for len(t.depthCounts) <= n.Depth {
		t.depthCounts = append(t.depthCounts, 0)
	}
	t.depthCounts[n.Depth]++
	t.nodes.Set(id, n)

	return n, nil
}

// Node returns the tree node with the given ID. The returned pointer is
// owned by the tree; callers must treat it as read-only.
func (t *Tree) Node(id string) (*Node, bool) {
	return t.nodes.Get(id)
}

// Has reports whether a tree node with the given ID exists.
func (t *Tree) Has(id string) bool {
	_, ok := t.nodes.Get(id)

	return ok
}

// Len returns the number of tree nodes.
func (t *Tree) Len() int { return t.nodes.Len() }

// RootID returns the root ID, or "" for an empty tree.
func (t *Tree) RootID() string { return t.rootID }

// IDs returns all tree-node IDs in insertion order.
func (t *Tree) IDs() []string {
	out := make([]string, 0, t.nodes.Len())
	for pair := t.nodes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}

// DepthCounts returns the number of nodes at each depth (index = depth).
func (t *Tree) DepthCounts() []int {
	out := make([]int, len(t.depthCounts))
	copy(out, t.depthCounts)

	return out
}

// Reset empties the tree; the graph reference is kept.
func (t *Tree) Reset() {
	t.nodes = orderedmap.New[string, *Node]()
	t.rootID = ""
	t.depthCounts = nil
}

// TraverseToRoot returns the tree IDs from the root down to id.
func (t *Tree) TraverseToRoot(id string) ([]string, error) {
	chain, err := t.chain(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(chain))
	for i, n := range chain {
		out[len(chain)-1-i] = n.ID
	}

	return out, nil
}

// GraphPath returns the graph IDs visited from the root down to id.
func (t *Tree) GraphPath(id string) ([]string, error) {
	chain, err := t.chain(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(chain))
	for i, n := range chain {
		out[len(chain)-1-i] = n.GraphNodeID
	}

	return out, nil
}

// chain collects nodes from id up to the root (leaf first).
func (t *Tree) chain(id string) ([]*Node, error) {
	var out []*Node
	cur := id
	for steps := 0; steps <= t.nodes.Len(); steps++ {
		n, ok := t.nodes.Get(cur)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, cur)
		}
		out = append(out, n)
		if n.IsRoot() {
			return out, nil
		}
		cur = n.ParentID
	}

	return nil, fmt.Errorf("%w: parent chain of %q does not reach the root", ErrNodeNotFound, id)
}

// Walk visits the tree in pre-order from the root, children in ChildIDs order.
// An error returned by fn stops the walk and is returned as is.
func (t *Tree) Walk(fn func(n *Node) error) error {
	if t.rootID == "" {
		return nil
	}
	stack := []string{t.rootID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n, ok := t.nodes.Get(id)
		if !ok {
			return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
		if err := fn(n); err != nil {
			return err
		}
		for i := len(n.ChildIDs) - 1; i >= 0; i-- {
			stack = append(stack, n.ChildIDs[i])
		}
	}

	return nil
}
