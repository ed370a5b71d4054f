package fringe

// Built-in policies.
var (
	LIFO                 Policy = lifo{}
	FIFO                 Policy = fifo{}
	MinCost              Policy = minBy{name: "min-cost", key: func(e Entry) float64 { return e.Cost }}
	MinHeuristic         Policy = minBy{name: "min-heuristic", key: func(e Entry) float64 { return e.Heuristic }}
	MinCostPlusHeuristic Policy = minBy{name: "min-cost+heuristic", key: func(e Entry) float64 { return e.Cost + e.Heuristic }}
)

type lifo struct{}

func (lifo) Name() string               { return "lifo" }
func (lifo) Select(entries []Entry) int { return len(entries) - 1 }

type fifo struct{}

func (fifo) Name() string       { return "fifo" }
func (fifo) Select([]Entry) int { return 0 }

// minBy picks the entry with the smallest key; strict < keeps the first
// inserted entry among ties.
type minBy struct {
	name string
	key  func(Entry) float64
}

func (m minBy) Name() string { return m.name }

func (m minBy) Select(entries []Entry) int {
	best := 0
	bestKey := m.key(entries[0])
	for i := 1; i < len(entries); i++ {
		if k := m.key(entries[i]); k < bestKey {
			best, bestKey = i, k
		}
	}

	return best
}

// PolicyFunc adapts a plain function to Policy.
type PolicyFunc func(entries []Entry) int

// Name implements Policy.
func (PolicyFunc) Name() string { return "custom" }

// Select implements Policy.
func (f PolicyFunc) Select(entries []Entry) int { return f(entries) }
