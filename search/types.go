package search

import (
	"errors"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/tree"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph is returned by New (and Reset) when no graph is available.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrInvalidConfig wraps validation failures of Config or Params.
	ErrInvalidConfig = errors.New("search: invalid configuration")

	// ErrUnknownAlgorithm is returned for an algorithm value the engine does not run.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrNoAlgorithm is returned by FirstStep and NextStep while the algorithm is None.
	ErrNoAlgorithm = errors.New("search: no algorithm selected")

	// ErrNotStarted is returned by NextStep before FirstStep.
	ErrNotStarted = errors.New("search: run not started")

	// ErrRunInProgress is returned when an operation needs an inactive run.
	ErrRunInProgress = errors.New("search: run in progress")

	// ErrStartNotFound is returned by FirstStep when the start node is not in the graph.
	ErrStartNotFound = errors.New("search: start node not found")

	// ErrInconsistentState is returned when a step cannot resolve a tree or graph node.
	ErrInconsistentState = errors.New("search: inconsistent graph or tree state")

	// ErrStepBudget is returned by Run when maxSteps is reached before a terminal outcome.
	ErrStepBudget = errors.New("search: step budget exhausted")
)

// Failure reasons reported in Result.Reason.
const (
	ReasonNoPath        = "no path exists"
	ReasonDepthExceeded = "exceeded depth limit"
)

// State is the lifecycle state of the current run.
type State int

const (
	// Idle means no run has been seeded.
	Idle State = iota
	// Running means the fringe is being stepped.
	Running
	// Found means the goal was popped.
	Found
	// Exhausted means the fringe emptied without reaching the goal.
	Exhausted
	// DepthExceeded means a popped node was deeper than the depth limit.
	DepthExceeded
	// Failed means the run stopped on an error.
	Failed
)

var stateNames = [...]string{"idle", "running", "found", "exhausted", "depth-exceeded", "failed"}

// String returns the lower-case state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}

	return stateNames[s]
}

// Terminal reports whether no further step can change the run.
func (s State) Terminal() bool {
	return s == Found || s == Exhausted || s == DepthExceeded || s == Failed
}

// Status classifies a step result.
type Status int

const (
	// StillRunning means the run has not reached a terminal outcome.
	StillRunning Status = iota
	// FoundPath means Result.Path holds the start→goal path.
	FoundPath
	// Failure means Result.Reason explains why the run ended without a path.
	Failure
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StillRunning:
		return "still-running"
	case FoundPath:
		return "found-path"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result is the outcome of one step.
type Result struct {
	Status Status

	// Path lists graph-node IDs from start to goal when Status is FoundPath.
	Path []string

	// Reason is set when Status is Failure.
	Reason string
}

// Params carries optional parameter overrides. Empty strings and a nil
// DepthLimit keep the current value.
type Params struct {
	Start      string
	Goal       string
	DepthLimit *int
}

// Snapshot is the read-only view handed to renderers after a step.
// Tree and Graph are live references owned by the engine.
type Snapshot struct {
	RunID             string
	Algorithm         Algorithm
	State             State
	Iteration         int
	DepthLimitCounter int

	// Fringe lists tree-node IDs in display order; FringeText joins them.
	Fringe     []string
	FringeText string

	// Expanded lists popped tree-node IDs since the last seed.
	Expanded []string

	// Discovered lists graph-node IDs that appeared in the tree, first-seen order.
	Discovered []string

	Tree   *tree.Tree
	Graph  *core.Graph
	Result Result
}
