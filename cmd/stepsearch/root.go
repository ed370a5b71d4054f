package main

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepsearch/builder"
	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/graphfile"
	"github.com/katalvlaran/stepsearch/search"
)

// Generated graph shapes selectable with --shape.
const (
	shapeClassroom = "classroom"
	shapeRandom    = "random"
	shapeGrid      = "grid"
	shapeChain     = "chain"
)

var errUnknownShape = errors.New("stepsearch: unknown graph shape")

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	graphPath   string
	shape       string
	seed        int64
	undirected  bool
	probability float64
	nodes       int
	rows        int
	cols        int
	idPrefix    string
	maxCost     int
	start       string
	goal        string
	depthLimit  int
	algorithm   string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "stepsearch",
		Short: "Step through graph search algorithms one expansion at a time",
		Long: `stepsearch runs DFS, DFS with iterative deepening, BFS, uniform-cost,
greedy and A* search over a state-space graph, one fringe pop per step.

Without --graph a graph is generated from --seed. --shape picks it:
  classroom  the 20-node classroom graph A..T (default)
  random     --nodes nodes named A, B, ... (or --id-prefix + index); each
             ordered pair is linked with --edge-probability; start is the
             first node, goal the last
  grid       --rows x --cols cells "r,c"; start 0,0, goal the last cell
  chain      --nodes nodes A -> B -> ... in a single line

Examples:
  stepsearch run --algorithm bfs
  stepsearch run --algorithm ids --depth-limit 6 --seed 3
  stepsearch run --shape grid --rows 3 --cols 4 --algorithm astar
  stepsearch tui --shape random --nodes 8 --edge-probability 0.3
  stepsearch generate --seed 3 --out classroom.yaml`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.graphPath, "graph", "", "YAML graph document (overrides --shape)")
	pf.StringVar(&opts.shape, "shape", shapeClassroom, "generated graph: classroom, random, grid or chain")
	pf.Int64Var(&opts.seed, "seed", 1, "seed for the generated graph")
	pf.BoolVar(&opts.undirected, "undirected", false, "generate an undirected graph")
	pf.Float64Var(&opts.probability, "edge-probability", builder.ClassroomEdgeProbability, "chance each candidate edge is kept (classroom, random)")
	pf.IntVar(&opts.nodes, "nodes", 12, "node count for --shape random and chain")
	pf.IntVar(&opts.rows, "rows", 4, "rows for --shape grid")
	pf.IntVar(&opts.cols, "cols", 5, "columns for --shape grid")
	pf.StringVar(&opts.idPrefix, "id-prefix", "", "name random nodes prefix+index instead of letters")
	pf.IntVar(&opts.maxCost, "max-cost", 10, "edge costs are drawn from 1..max-cost (random, grid, chain)")
	pf.StringVar(&opts.start, "start", search.DefaultStart, "start node ID")
	pf.StringVar(&opts.goal, "goal", search.DefaultGoal, "goal node ID")
	pf.IntVar(&opts.depthLimit, "depth-limit", search.DefaultDepthLimit, "hard depth limit (and iterative deepening ceiling)")
	pf.StringVar(&opts.algorithm, "algorithm", "dfs", "dfs, dfs-id, bfs, ucs, greedy or astar")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log every step")

	cmd.AddCommand(newRunCmd(opts), newTUICmd(opts), newGenerateCmd(opts))

	return cmd
}

// source is the graph a command works on plus how to rebuild it.
type source struct {
	graph   *core.Graph
	factory search.GraphFactory
	doc     *graphfile.Document

	// defaults are the start and goal natural to a generated shape.
	defaults search.Params
}

// loadSource reads --graph, or generates the --shape graph. The factory
// regenerates with the next seed so Reset yields a new random graph.
func (o *rootOptions) loadSource() (*source, error) {
	if o.graphPath != "" {
		doc, err := graphfile.LoadFile(o.graphPath)
		if err != nil {
			return nil, err
		}
		g, err := doc.Build()
		if err != nil {
			return nil, err
		}
		factory := func() (*core.Graph, error) {
			d, err := graphfile.LoadFile(o.graphPath)
			if err != nil {
				return nil, err
			}

			return d.Build()
		}

		return &source{graph: g, factory: factory, doc: doc}, nil
	}

	bopts, cons, defaults, err := o.shapeRecipe()
	if err != nil {
		return nil, err
	}
	seed := o.seed
	gopts := []core.GraphOption{core.WithDirected(!o.undirected)}
	build := func() (*core.Graph, error) {
		g, err := builder.BuildGraph(gopts,
			append([]builder.BuilderOption{builder.WithSeed(seed)}, bopts...), cons)
		seed++

		return g, err
	}
	g, err := build()
	if err != nil {
		return nil, err
	}

	return &source{graph: g, factory: build, defaults: defaults}, nil
}

// shapeRecipe maps --shape and its sizing flags to builder options, the
// constructor and the shape's start and goal.
func (o *rootOptions) shapeRecipe() ([]builder.BuilderOption, builder.Constructor, search.Params, error) {
	switch o.shape {
	case shapeClassroom:
		return nil, builder.Classroom(o.probability), search.Params{}, nil

	case shapeRandom:
		if o.nodes < 1 {
			return nil, nil, search.Params{}, fmt.Errorf("stepsearch: --nodes must be at least 1, got %d", o.nodes)
		}
		idFn, idOpt := builder.IDFn(builder.LetterIDFn), builder.WithLetterIDs()
		if o.idPrefix != "" {
			idFn, idOpt = builder.PrefixIDFn(o.idPrefix), builder.WithPrefixIDs(o.idPrefix)
		}
		last := o.nodes - 1
		// Index distance to the goal: admissible only for chains, but it gives
		// greedy and A* a gradient to follow.
		toGoal := func(idx int, _ string) float64 { return float64(last - idx) }
		bopts := []builder.BuilderOption{idOpt, o.costOption(), builder.WithHeuristicFn(toGoal)}

		return bopts, builder.RandomSparse(o.nodes, o.probability),
			search.Params{Start: idFn(0), Goal: idFn(last)}, nil

	case shapeGrid:
		if o.rows < 1 || o.cols < 1 {
			return nil, nil, search.Params{}, fmt.Errorf("stepsearch: --rows and --cols must be at least 1, got %dx%d", o.rows, o.cols)
		}

		return []builder.BuilderOption{o.costOption()}, builder.Grid(o.rows, o.cols),
			search.Params{Start: builder.GridID(0, 0), Goal: builder.GridID(o.rows-1, o.cols-1)}, nil

	case shapeChain:
		ids := make([]string, max(o.nodes, 0))
		for i := range ids {
			ids[i] = builder.LetterIDFn(i)
		}
		p := search.Params{}
		if len(ids) > 0 {
			p = search.Params{Start: ids[0], Goal: ids[len(ids)-1]}
		}

		return []builder.BuilderOption{o.costOption()}, builder.Chain(ids...), p, nil

	default:
		return nil, nil, search.Params{}, fmt.Errorf("%w: %q", errUnknownShape, o.shape)
	}
}

// costOption draws integer costs from 1..--max-cost; a ceiling of 1 or less
// makes every edge cost 1.
func (o *rootOptions) costOption() builder.BuilderOption {
	if o.maxCost <= 1 {
		return builder.WithConstantCost(1)
	}

	return builder.WithUniformIntCost(1, o.maxCost)
}

// config merges, in order: defaults, the generated shape's start and goal,
// the document's parameters and any parameter flag set on the command line.
func (o *rootOptions) config(cmd *cobra.Command, src *source) (search.Config, error) {
	cfg := search.DefaultConfig().Merge(src.defaults)
	if doc := src.doc; doc != nil {
		cfg = cfg.Merge(doc.Params())
	}
	var p search.Params
	flags := cmd.Flags()
	if flags.Changed("start") {
		p.Start = o.start
	}
	if flags.Changed("goal") {
		p.Goal = o.goal
	}
	if flags.Changed("depth-limit") {
		p.DepthLimit = &o.depthLimit
	}
	cfg = cfg.Merge(p)

	return cfg, cfg.Validate()
}

// algorithmFor resolves --algorithm, falling back to the document's choice
// when the flag was not set.
func (o *rootOptions) algorithmFor(cmd *cobra.Command, doc *graphfile.Document) (search.Algorithm, error) {
	name := o.algorithm
	if !cmd.Flags().Changed("algorithm") && doc != nil && doc.Algorithm != "" {
		name = doc.Algorithm
	}

	return search.ParseAlgorithm(name)
}

// newEngine wires graph, parameters, algorithm and observers into an engine.
func (o *rootOptions) newEngine(cmd *cobra.Command, log logr.Logger, obs ...search.Observer) (*search.Engine, error) {
	src, err := o.loadSource()
	if err != nil {
		return nil, err
	}
	cfg, err := o.config(cmd, src)
	if err != nil {
		return nil, err
	}
	alg, err := o.algorithmFor(cmd, src.doc)
	if err != nil {
		return nil, err
	}

	engOpts := []search.Option{
		search.WithConfig(cfg),
		search.WithAlgorithm(alg),
		search.WithLogger(log),
		search.WithGraphFactory(src.factory),
	}
	for _, ob := range obs {
		engOpts = append(engOpts, search.WithObserver(ob))
	}
	eng, err := search.New(src.graph, engOpts...)
	if err != nil {
		return nil, fmt.Errorf("stepsearch: %w", err)
	}

	return eng, nil
}
