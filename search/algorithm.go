package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stepsearch/fringe"
)

// Algorithm identifies a search strategy.
type Algorithm string

// Supported algorithms. None keeps the engine idle.
const (
	None   Algorithm = "none"
	DFS    Algorithm = "dfs"
	DFSID  Algorithm = "dfs-id"
	BFS    Algorithm = "bfs"
	UCS    Algorithm = "ucs"
	Greedy Algorithm = "greedy"
	AStar  Algorithm = "astar"
)

// strategy is everything that varies between algorithms.
type strategy struct {
	policy    fringe.Policy
	iterative bool
}

var strategies = map[Algorithm]strategy{
	DFS:    {policy: fringe.LIFO},
	DFSID:  {policy: fringe.LIFO, iterative: true},
	BFS:    {policy: fringe.FIFO},
	UCS:    {policy: fringe.MinCost},
	Greedy: {policy: fringe.MinHeuristic},
	AStar:  {policy: fringe.MinCostPlusHeuristic},
}

var aliases = map[string]Algorithm{
	"":       None,
	"none":   None,
	"dfs":    DFS,
	"dfs-id": DFSID,
	"dfsid":  DFSID,
	"ids":    DFSID,
	"bfs":    BFS,
	"ucs":    UCS,
	"greedy": Greedy,
	"gs":     Greedy,
	"astar":  AStar,
	"a*":     AStar,
}

// Algorithms returns the runnable algorithms in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{DFS, DFSID, BFS, UCS, Greedy, AStar}
}

// ParseAlgorithm maps a name or alias (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	a, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return None, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}

	return a, nil
}

// Valid reports whether a is None or a runnable algorithm.
func (a Algorithm) Valid() bool {
	if a == None {
		return true
	}
	_, ok := strategies[a]

	return ok
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }
