// Package stepsearch is a step-wise graph search engine for teaching and
// visualising uninformed and informed search.
//
// A search runs one fringe pop per step, so every intermediate state (the
// search tree, the fringe and the expanded list) can be inspected or drawn
// between steps. Six algorithms share one loop and differ only in how the
// next fringe entry is picked:
//
//	dfs     last inserted          (LIFO)
//	dfs-id  last inserted, with an iterative-deepening ceiling
//	bfs     first inserted         (FIFO)
//	ucs     lowest path cost g
//	greedy  lowest heuristic h
//	astar   lowest g + h
//
// Ties always go to the entry inserted first.
//
// Layout:
//
//	core/       state-space Graph: nodes with heuristics, weighted edges
//	tree/       search tree; one node per expansion-produced path
//	fringe/     ordered frontier and the selection policies
//	search/     the Engine: FirstStep/NextStep, parameters, events
//	builder/    graph generators (seeded classroom graph, grids, chains)
//	graphfile/  YAML documents for graphs and search parameters
//	observe/    Prometheus metrics driven by engine events
//	cmd/stepsearch  CLI: batch runs, a terminal UI and graph generation
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Classroom(builder.ClassroomEdgeProbability))
//	eng, _ := search.New(g, search.WithAlgorithm(search.AStar))
//	res, _ := eng.FirstStep()
//	for res.Status == search.StillRunning {
//		res, _ = eng.NextStep()
//	}
//	fmt.Println(res.Path)
package stepsearch
