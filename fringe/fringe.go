package fringe

import (
	"fmt"
	"strings"
)

// Fringe is the ordered frontier of one search run.
// It is owned by a single engine and not safe for concurrent mutation.
type Fringe struct {
	tree    TreeLookup
	entries []Entry
}

// New returns an empty fringe validating pushes against t.
// A nil t disables the tree-reference check.
func New(t TreeLookup) *Fringe {
	return &Fringe{tree: t}
}

// Push appends e at the end of the fringe.
func (f *Fringe) Push(e Entry) error {
	if f.tree != nil && !f.tree.Has(e.TreeNodeID) {
		return fmt.Errorf("%w: %q", ErrUnknownTreeNode, e.TreeNodeID)
	}
	f.entries = append(f.entries, e)

	return nil
}

// Pop removes and returns the entry chosen by p. The remaining entries keep
// their relative order.
func (f *Fringe) Pop(p Policy) (Entry, error) {
	if p == nil {
		return Entry{}, ErrNilPolicy
	}
	if len(f.entries) == 0 {
		return Entry{}, ErrEmpty
	}
	i := p.Select(f.entries)
	if i < 0 || i >= len(f.entries) {
		return Entry{}, fmt.Errorf("%w: %s returned %d for %d entries", ErrBadSelection, p.Name(), i, len(f.entries))
	}
	e := f.entries[i]
	f.entries = append(f.entries[:i], f.entries[i+1:]...)

	return e, nil
}

// Len returns the number of entries.
func (f *Fringe) Len() int { return len(f.entries) }

// Entries returns a copy of the entries in insertion order.
func (f *Fringe) Entries() []Entry {
	out := make([]Entry, len(f.entries))
	copy(out, f.entries)

	return out
}

// IDs returns the tree-node IDs in insertion order.
func (f *Fringe) IDs() []string {
	out := make([]string, len(f.entries))
	for i, e := range f.entries {
		out[i] = e.TreeNodeID
	}

	return out
}

// String renders the fringe as space-separated tree-node IDs.
func (f *Fringe) String() string {
	return strings.Join(f.IDs(), " ")
}

// Reset empties the fringe.
func (f *Fringe) Reset() {
	f.entries = nil
}
