package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/search"
)

// Decode reads one document from r.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}

		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}
	if len(doc.Nodes) == 0 {
		return nil, ErrEmptyDocument
	}

	return &doc, nil
}

// LoadFile decodes the document stored at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Build creates the graph described by d.
func (d *Document) Build() (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(d.Directed))
	for i, n := range d.Nodes {
		if err := g.AddNode(n.ID, n.Heuristic); err != nil {
			return nil, fmt.Errorf("%w: nodes[%d] %q: %w", ErrInvalidDocument, i, n.ID, err)
		}
	}
	for i, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Cost); err != nil {
			return nil, fmt.Errorf("%w: edges[%d] %s→%s: %w", ErrInvalidDocument, i, e.From, e.To, err)
		}
	}

	return g, nil
}

// Params returns the document's search parameters as overrides; absent
// fields stay empty so the engine keeps its current values.
func (d *Document) Params() search.Params {
	return search.Params{Start: d.Start, Goal: d.Goal, DepthLimit: d.DepthLimit}
}

// FromGraph captures g and cfg as a document. For undirected graphs each
// mirrored pair is written once, in the direction inserted first.
func FromGraph(g *core.Graph, cfg search.Config) *Document {
	limit := cfg.DepthLimit
	doc := &Document{
		Directed:   g.Directed(),
		Start:      cfg.Start,
		Goal:       cfg.Goal,
		DepthLimit: &limit,
	}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, NodeSpec{ID: n.ID, Heuristic: n.Heuristic})
	}

	written := make(map[[2]string]bool)
	for _, e := range g.Edges() {
		if !doc.Directed && written[[2]string{e.To, e.From}] {
			continue
		}
		written[[2]string{e.From, e.To}] = true
		doc.Edges = append(doc.Edges, EdgeSpec{From: e.From, To: e.To, Cost: e.Cost})
	}

	return doc
}

// Encode writes doc to w as YAML with two-space indentation.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return enc.Close()
}

// SaveFile writes doc to path, replacing any existing file.
func SaveFile(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphfile: %w", err)
	}
	if err = Encode(f, doc); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
