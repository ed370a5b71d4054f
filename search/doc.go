// Package search implements the step-at-a-time search engine used to teach
// uninformed and informed graph search.
//
// One Engine owns a state-space graph (core.Graph), the search tree grown so
// far (tree.Tree) and the frontier (fringe.Fringe). Callers drive it one step
// at a time:
//
//	eng, _ := search.New(g, search.WithAlgorithm(search.BFS))
//	res, _ := eng.FirstStep()          // seed the root
//	for res.Status == search.StillRunning {
//		res, _ = eng.NextStep()        // pop, goal-test, expand
//		snap := eng.Snapshot()         // fringe, expanded, discovered, tree
//		_ = snap
//	}
//
// Algorithms
//
// Every algorithm runs the same step function. They differ only in the
// fringe selection policy and, for DFSID, an iterative depth ceiling:
//
//	DFS     LIFO
//	DFSID   LIFO, expand only while depth < ceiling, raise the ceiling and
//	        restart when the fringe empties
//	BFS     FIFO
//	UCS     lowest cumulative cost
//	Greedy  lowest heuristic
//	AStar   lowest cost + heuristic
//
// Ties always go to the entry inserted first, and children are expanded in
// edge insertion order, so a fixed graph and configuration always produce
// the same sequence of expanded tree nodes.
//
// Revisited states are not pruned: a graph node reached along two paths
// appears twice in the tree, each time with its own tree-node ID
// (graph ID followed by a per-engine counter, e.g. "B3").
//
// Outcomes
//
// Terminal outcomes ("no path exists", "exceeded depth limit", a found path)
// are Result values, not errors. Errors are reserved for usage mistakes
// (ErrNoAlgorithm, ErrNotStarted, ErrRunInProgress, ErrStartNotFound) and
// for an inconsistent graph/tree during a step (ErrInconsistentState), which
// moves the engine to the Failed state.
//
// Concurrency
//
// An Engine is single-owner: calls must not overlap. Observers run
// synchronously inside the step that produced the event. Independent
// engines share nothing and may run in parallel.
package search
