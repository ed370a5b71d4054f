package graphfile

import "errors"

var (
	// ErrEmptyDocument is returned when the input holds no document or no nodes.
	ErrEmptyDocument = errors.New("graphfile: empty document")

	// ErrInvalidDocument wraps a node or edge the graph rejected.
	ErrInvalidDocument = errors.New("graphfile: invalid document")
)

// Document is the YAML form of a graph plus optional search parameters.
type Document struct {
	Directed   bool       `yaml:"directed"`
	Start      string     `yaml:"start,omitempty"`
	Goal       string     `yaml:"goal,omitempty"`
	DepthLimit *int       `yaml:"depthLimit,omitempty"`
	Algorithm  string     `yaml:"algorithm,omitempty"`
	Nodes      []NodeSpec `yaml:"nodes"`
	Edges      []EdgeSpec `yaml:"edges"`
}

// NodeSpec is one graph node.
type NodeSpec struct {
	ID        string  `yaml:"id"`
	Heuristic float64 `yaml:"heuristic"`
}

// EdgeSpec is one edge. In undirected documents it stands for both directions.
type EdgeSpec struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Cost float64 `yaml:"cost"`
}
