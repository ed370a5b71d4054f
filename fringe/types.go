package fringe

import "errors"

// Sentinel errors for fringe operations.
var (
	// ErrEmpty is returned by Pop on an empty fringe.
	ErrEmpty = errors.New("fringe: empty")

	// ErrNilPolicy is returned by Pop when no policy is supplied.
	ErrNilPolicy = errors.New("fringe: nil policy")

	// ErrUnknownTreeNode is returned by Push for an entry whose tree node
	// does not exist.
	ErrUnknownTreeNode = errors.New("fringe: tree node not found")

	// ErrBadSelection is returned when a policy picks an index out of range.
	ErrBadSelection = errors.New("fringe: policy selected an invalid index")
)

// TreeLookup is the part of the search tree the fringe validates against.
// *tree.Tree satisfies it.
type TreeLookup interface {
	Has(id string) bool
}

// Entry is a fringe item: a tree-node reference plus the ranking fields
// copied from the tree node when it was pushed.
type Entry struct {
	TreeNodeID string
	Cost       float64
	Heuristic  float64
	Depth      int
}

// Policy chooses which entry to remove next.
// Select is only called with a non-empty slice and must not modify it.
type Policy interface {
	Name() string
	Select(entries []Entry) int
}
