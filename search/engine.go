package search

import (
	"fmt"

	"github.com/go-logr/logr"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/fringe"
	"github.com/katalvlaran/stepsearch/tree"
)

// Engine runs one search at a time over a graph it owns.
type Engine struct {
	graph   *core.Graph
	factory GraphFactory

	initial   Config
	cfg       Config
	algorithm Algorithm
	strat     strategy

	tree       *tree.Tree
	fringe     *fringe.Fringe
	expanded   []string
	discovered *orderedmap.OrderedMap[string, struct{}]

	state  State
	result Result
	runID  string

	// idCounter feeds tree-node IDs; it survives restarts and resets to 0 on Reset.
	idCounter int

	// depthLimitCounter is the DFSID ceiling; iteration counts its restarts.
	depthLimitCounter int
	iteration         int

	log       logr.Logger
	observers []Observer
}

// New returns an idle engine over g.
//
// Errors: ErrNilGraph, ErrInvalidConfig, ErrUnknownAlgorithm.
func New(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.config.Validate(); err != nil {
		return nil, err
	}
	if !o.algorithm.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, o.algorithm)
	}

	e := &Engine{
		factory:   o.factory,
		initial:   o.config,
		cfg:       o.config,
		log:       o.logger.WithName("search"),
		observers: o.observers,
	}
	e.attach(g)
	e.setAlgorithm(o.algorithm)

	return e, nil
}

// attach binds a graph and fresh run containers to the engine.
func (e *Engine) attach(g *core.Graph) {
	e.graph = g
	e.tree = tree.New(g)
	e.fringe = fringe.New(e.tree)
	e.clearRun()
}

func (e *Engine) setAlgorithm(a Algorithm) {
	e.algorithm = a
	e.strat = strategies[a]
}

// clearRun drops the current run. The ID counter and configuration stay.
func (e *Engine) clearRun() {
	e.tree.Reset()
	e.fringe.Reset()
	e.expanded = nil
	e.discovered = orderedmap.New[string, struct{}]()
	e.state = Idle
	e.result = Result{}
	e.runID = ""
	e.iteration = 0
	e.depthLimitCounter = 0
}

// SetParameters applies the non-empty fields of p. It is rejected while a
// run is active; an invalid merge leaves the configuration unchanged.
func (e *Engine) SetParameters(p Params) error {
	if e.state == Running {
		return ErrRunInProgress
	}
	next := e.cfg.Merge(p)
	if err := next.Validate(); err != nil {
		return err
	}
	e.cfg = next

	return nil
}

// Select switches the algorithm and clears the run. Selecting the algorithm
// of an active run is a no-op.
func (e *Engine) Select(a Algorithm) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, a)
	}
	if a == e.algorithm && e.state == Running {
		return nil
	}
	e.setAlgorithm(a)
	e.clearRun()
	e.log.V(1).Info("algorithm selected", "algorithm", a)

	return nil
}

// Restart clears the run and keeps graph, parameters and algorithm.
func (e *Engine) Restart() {
	e.clearRun()
	e.log.V(1).Info("restart", "algorithm", e.algorithm)
}

// Reset rebuilds the graph through the factory (the current graph is kept
// when none is set), restores the initial configuration, selects None and
// zeroes the tree-node ID counter.
func (e *Engine) Reset() error {
	g := e.graph
	if e.factory != nil {
		fresh, err := e.factory()
		if err != nil {
			return fmt.Errorf("search: rebuild graph: %w", err)
		}
		if fresh == nil {
			return ErrNilGraph
		}
		g = fresh
	}
	e.attach(g)
	e.cfg = e.initial
	e.setAlgorithm(None)
	e.idCounter = 0
	e.log.Info("reset", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return nil
}

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Algorithm returns the selected algorithm.
func (e *Engine) Algorithm() Algorithm { return e.algorithm }

// Config returns the current parameters.
func (e *Engine) Config() Config { return e.cfg }

// Graph returns the state-space graph.
func (e *Engine) Graph() *core.Graph { return e.graph }

// Tree returns the search tree of the current run.
func (e *Engine) Tree() *tree.Tree { return e.tree }

// Fringe returns the frontier of the current run.
func (e *Engine) Fringe() *fringe.Fringe { return e.fringe }

// DepthLimitCounter returns the DFSID ceiling (0 before FirstStep).
func (e *Engine) DepthLimitCounter() int { return e.depthLimitCounter }

// RunID returns the identifier of the current run, "" when idle.
func (e *Engine) RunID() string { return e.runID }

// Result returns the result of the last step.
func (e *Engine) Result() Result { return e.result }

// Expanded returns a copy of the expanded tree-node IDs.
func (e *Engine) Expanded() []string {
	out := make([]string, len(e.expanded))
	copy(out, e.expanded)

	return out
}

// Discovered returns the graph-node IDs seen in the tree, first-seen order.
func (e *Engine) Discovered() []string {
	out := make([]string, 0, e.discovered.Len())
	for pair := e.discovered.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}

// Snapshot returns the renderer view of the current run.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		RunID:             e.runID,
		Algorithm:         e.algorithm,
		State:             e.state,
		Iteration:         e.iteration,
		DepthLimitCounter: e.depthLimitCounter,
		Fringe:            e.fringe.IDs(),
		FringeText:        e.fringe.String(),
		Expanded:          e.Expanded(),
		Discovered:        e.Discovered(),
		Tree:              e.tree,
		Graph:             e.graph,
		Result:            e.result,
	}
}

func (e *Engine) emit(ev Event) {
	if len(e.observers) == 0 {
		return
	}
	ev.RunID = e.runID
	ev.Algorithm = e.algorithm
	ev.Iteration = e.iteration
	ev.FringeLen = e.fringe.Len()
	ev.TreeLen = e.tree.Len()
	for _, obs := range e.observers {
		obs.OnEvent(ev)
	}
}
