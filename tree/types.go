package tree

import (
	"errors"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Sentinel errors for tree operations.
var (
	// ErrNegativeHeuristic is returned when a heuristic below zero is supplied.
	ErrNegativeHeuristic = errors.New("tree: heuristic must be non-negative")

	// ErrNegativeCost is returned when an edge cost below zero is supplied.
	ErrNegativeCost = errors.New("tree: edge cost must be non-negative")

	// ErrEmptyID is returned for an empty tree-node ID.
	ErrEmptyID = errors.New("tree: node ID is empty")

	// ErrDuplicateNode is returned when the tree-node ID is already used.
	ErrDuplicateNode = errors.New("tree: node already exists")

	// ErrUnknownGraphNode is returned when GraphNodeID is not in the graph.
	ErrUnknownGraphNode = errors.New("tree: graph node not found")

	// ErrParentNotFound is returned when ParentID names no tree node.
	ErrParentNotFound = errors.New("tree: parent not found")

	// ErrRootExists is returned for a second parentless node.
	ErrRootExists = errors.New("tree: root already set")

	// ErrNodeNotFound is returned by lookups and walks for unknown IDs.
	ErrNodeNotFound = errors.New("tree: node not found")
)

// GraphLookup is the part of the state-space graph the tree validates against.
// *core.Graph satisfies it.
type GraphLookup interface {
	HasNode(id string) bool
}

// Node is one vertex of the search tree.
type Node struct {
	// ID is unique within the tree and distinct from graph IDs.
	ID string

	// GraphNodeID is the state this node instantiates.
	GraphNodeID string

	// ParentID is empty for the root.
	ParentID string

	// ChildIDs in expansion order.
	ChildIDs []string

	// Heuristic is copied from the graph node.
	Heuristic float64

	// Cost is the cumulative path cost from the root.
	Cost float64

	// Depth is the number of edges from the root.
	Depth int
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.ParentID == "" }

// Tree is the incrementally built search tree.
// It is owned by a single engine and not safe for concurrent mutation.
type Tree struct {
	graph       GraphLookup
	nodes       *orderedmap.OrderedMap[string, *Node]
	rootID      string
	depthCounts []int
}

// New returns an empty tree validating graph references against g.
// A nil g disables the graph-reference check.
func New(g GraphLookup) *Tree {
	return &Tree{
		graph: g,
		nodes: orderedmap.New[string, *Node](),
	}
}
