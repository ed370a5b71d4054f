// Package core defines the state-space Graph searched by the stepping engine:
// nodes carrying a heuristic estimate and weighted edges between them.
//
// This file declares Node, Edge, Arc, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID       - node ID is the empty string.
//	ErrNegativeHeuristic - heuristic is negative or NaN.
//	ErrDuplicateNode     - a node with this ID already exists.
//	ErrNodeNotFound      - requested node does not exist.
//	ErrLoopNotAllowed    - edge from a node to itself.
//	ErrNegativeCost      - edge cost is negative or NaN.
//	ErrDuplicateEdge     - an edge with the same (from,to) pair already exists.
package core

import (
	"errors"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// NotFound is returned by FindNode and FindEdge when nothing matches.
const NotFound = -1

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNegativeHeuristic indicates a heuristic below zero (or NaN).
	ErrNegativeHeuristic = errors.New("core: heuristic must be non-negative")

	// ErrDuplicateNode indicates an insert of an ID that is already present.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates an edge whose endpoints are the same node.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNegativeCost indicates an edge cost below zero (or NaN).
	ErrNegativeCost = errors.New("core: edge cost must be non-negative")

	// ErrDuplicateEdge indicates a second edge for an existing (from,to) pair.
	ErrDuplicateEdge = errors.New("core: edge already exists")
)

// Node is a state in the search space.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string

	// Heuristic is the estimated distance from this node to the goal.
	Heuristic float64
}

// Edge is a weighted, one-way connection between two nodes.
// Undirected graphs store an undirected link as two mirrored Edges.
type Edge struct {
	From string
	To   string
	Cost float64
}

// Arc is one outgoing edge seen from its source node.
type Arc struct {
	To   string
	Cost float64
}

// edgeKey identifies an edge by its ordered endpoint pair.
type edgeKey struct {
	from, to string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether AddEdge stores only from→to (true) or also
// mirrors the edge as to→from (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the in-memory state-space graph.
//
// Nodes and edges keep insertion order: the expansion order of a node's
// children is the insertion order of its outgoing edges, and tie-breaking in
// the fringe depends on it.
type Graph struct {
	mu sync.RWMutex // guards everything below

	directed bool

	// nodes maps node ID → position in insertion order.
	nodes *orderedmap.OrderedMap[string, *nodeRecord]

	// edges in insertion order; edgeIndex maps (from,to) → position in edges.
	edges     []Edge
	edgeIndex *orderedmap.OrderedMap[edgeKey, int]

	// outgoing[from] lists positions in edges, ascending.
	outgoing map[string][]int
}

// nodeRecord is the stored form of a Node plus its insertion index.
type nodeRecord struct {
	node  Node
	index int
}

// NewGraph creates an empty Graph. By default the graph is directed.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{directed: true}
	g.init()
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// init (re)allocates the catalogs; caller holds the write lock or owns g.
func (g *Graph) init() {
	g.nodes = orderedmap.New[string, *nodeRecord]()
	g.edges = nil
	g.edgeIndex = orderedmap.New[edgeKey, int]()
	g.outgoing = make(map[string][]int)
}
