package search

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/stepsearch/fringe"
	"github.com/katalvlaran/stepsearch/tree"
)

// FirstStep seeds a new run with the start node and returns StillRunning.
//
// A finished run is cleared first; an active one is left alone and
// ErrRunInProgress is returned. An unknown start node fails the run with
// ErrStartNotFound.
func (e *Engine) FirstStep() (Result, error) {
	if e.algorithm == None {
		return Result{}, ErrNoAlgorithm
	}
	if e.state == Running {
		return e.result, ErrRunInProgress
	}
	if e.state.Terminal() {
		e.clearRun()
	}

	e.runID = uuid.NewString()
	e.depthLimitCounter = min(1, e.cfg.DepthLimit)
	if err := e.seed(); err != nil {
		return e.fail(err)
	}
	e.state = Running
	e.result = Result{Status: StillRunning}
	e.log.Info("run started", "run", e.runID, "algorithm", e.algorithm,
		"start", e.cfg.Start, "goal", e.cfg.Goal, "depthLimit", e.cfg.DepthLimit)

	return e.result, nil
}

// seed inserts the root tree node and its fringe entry.
func (e *Engine) seed() error {
	start := e.cfg.Start
	h, ok := e.graph.Heuristic(start)
	if !ok {
		return fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	root, err := e.tree.AddNode(e.nextTreeID(start), h, 0, "", start)
	if err != nil {
		return fmt.Errorf("%w: seed %q: %v", ErrInconsistentState, start, err)
	}
	e.discovered.Set(start, struct{}{})
	if err = e.fringe.Push(entryOf(root)); err != nil {
		return fmt.Errorf("%w: %v", ErrInconsistentState, err)
	}
	e.emit(Event{Kind: EventSeeded, TreeNodeID: root.ID, GraphNodeID: start})

	return nil
}

// NextStep performs one bounded unit of work: pop one entry, goal-test it
// and either finish or expand it. For DFSID an emptied fringe below the
// depth limit raises the ceiling and reseeds instead.
//
// A finished run returns its stored result unchanged.
func (e *Engine) NextStep() (Result, error) {
	switch {
	case e.algorithm == None:
		return Result{}, ErrNoAlgorithm
	case e.state == Idle:
		return Result{}, ErrNotStarted
	case e.state.Terminal():
		return e.result, nil
	}

	entry, err := e.fringe.Pop(e.strat.policy)
	if errors.Is(err, fringe.ErrEmpty) {
		return e.onEmpty()
	}
	if err != nil {
		return e.fail(fmt.Errorf("%w: %v", ErrInconsistentState, err))
	}
	e.expanded = append(e.expanded, entry.TreeNodeID)

	node, ok := e.tree.Node(entry.TreeNodeID)
	if !ok {
		return e.fail(fmt.Errorf("%w: tree node %q", ErrInconsistentState, entry.TreeNodeID))
	}
	e.log.V(1).Info("step", "run", e.runID, "algorithm", e.algorithm,
		"popped", node.ID, "depth", node.Depth, "fringe", e.fringe.String())
	e.emit(Event{Kind: EventSelected, TreeNodeID: node.ID, GraphNodeID: node.GraphNodeID, Depth: node.Depth})

	if node.GraphNodeID == e.cfg.Goal {
		path, err := e.tree.GraphPath(node.ID)
		if err != nil {
			return e.fail(fmt.Errorf("%w: %v", ErrInconsistentState, err))
		}

		return e.finish(Found, Result{Status: FoundPath, Path: path}), nil
	}
	if node.Depth > e.cfg.DepthLimit {
		return e.finish(DepthExceeded, Result{Status: Failure, Reason: ReasonDepthExceeded}), nil
	}
	if e.strat.iterative && node.Depth >= e.depthLimitCounter {
		return e.result, nil
	}

	children, err := e.expand(node)
	if err != nil {
		return e.fail(err)
	}
	e.emit(Event{Kind: EventExpanded, TreeNodeID: node.ID, GraphNodeID: node.GraphNodeID,
		Depth: node.Depth, Children: children})

	return e.result, nil
}

// onEmpty handles an empty fringe.
func (e *Engine) onEmpty() (Result, error) {
	if !e.strat.iterative || e.depthLimitCounter >= e.cfg.DepthLimit {
		return e.finish(Exhausted, Result{Status: Failure, Reason: ReasonNoPath}), nil
	}

	e.depthLimitCounter++
	e.iteration++
	e.tree.Reset()
	e.fringe.Reset()
	e.expanded = nil
	e.discovered = orderedmap.New[string, struct{}]()
	e.log.Info("deepening", "run", e.runID, "ceiling", e.depthLimitCounter, "iteration", e.iteration)
	e.emit(Event{Kind: EventRestarted, Depth: e.depthLimitCounter})
	if err := e.seed(); err != nil {
		return e.fail(err)
	}

	return e.result, nil
}

// expand adds one child per outgoing edge of node, in edge order, and pushes
// each onto the fringe. It returns the number of children added.
func (e *Engine) expand(node *tree.Node) (int, error) {
	arcs, err := e.graph.Neighbors(node.GraphNodeID)
	if err != nil {
		return 0, fmt.Errorf("%w: neighbors of %q: %v", ErrInconsistentState, node.GraphNodeID, err)
	}
	for _, arc := range arcs {
		h, ok := e.graph.Heuristic(arc.To)
		if !ok {
			return 0, fmt.Errorf("%w: graph node %q", ErrInconsistentState, arc.To)
		}
		child, err := e.tree.AddNode(e.nextTreeID(arc.To), h, arc.Cost, node.ID, arc.To)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInconsistentState, err)
		}
		e.discovered.Set(arc.To, struct{}{})
		if err = e.fringe.Push(entryOf(child)); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInconsistentState, err)
		}
	}

	return len(arcs), nil
}

// finish records a terminal outcome.
func (e *Engine) finish(s State, r Result) Result {
	e.state = s
	e.result = r
	e.log.Info("run finished", "run", e.runID, "algorithm", e.algorithm, "state", s,
		"path", r.Path, "reason", r.Reason, "expanded", len(e.expanded))
	e.emit(Event{Kind: EventFinished, Result: r})

	return r
}

// fail moves the run to Failed and returns err alongside the failure result.
func (e *Engine) fail(err error) (Result, error) {
	e.log.Error(err, "run failed", "run", e.runID, "algorithm", e.algorithm)
	r := e.finish(Failed, Result{Status: Failure, Reason: err.Error()})

	return r, err
}

// nextTreeID returns graphID followed by the next counter value, skipping
// values that collide with an existing tree node (possible when graph IDs
// end in digits).
func (e *Engine) nextTreeID(graphID string) string {
	for {
		id := graphID + strconv.Itoa(e.idCounter)
		e.idCounter++
		if !e.tree.Has(id) {
			return id
		}
	}
}

func entryOf(n *tree.Node) fringe.Entry {
	return fringe.Entry{
		TreeNodeID: n.ID,
		Cost:       n.Cost,
		Heuristic:  n.Heuristic,
		Depth:      n.Depth,
	}
}
