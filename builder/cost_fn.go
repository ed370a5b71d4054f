// Package builder provides the edge cost and heuristic generators used by
// graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeCost is the cost of every edge when no CostFn is configured.
const DefaultEdgeCost float64 = 1

// CostFn produces an edge cost from an optional RNG. It must be
// deterministic for a given RNG state and never return a negative value.
type CostFn func(rng *rand.Rand) float64

// HeuristicFn produces a node heuristic from its index and ID.
// It must be deterministic and non-negative.
type HeuristicFn func(idx int, id string) float64

// DefaultCostFn always returns DefaultEdgeCost.
func DefaultCostFn(_ *rand.Rand) float64 {
	return DefaultEdgeCost
}

// ConstantCostFn returns a CostFn that always yields value.
// Panics if value < 0.
func ConstantCostFn(value float64) CostFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCostFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformIntCostFn returns a CostFn drawing integers uniformly from [lo, hi].
// With a nil RNG it yields lo. Panics unless 0 ≤ lo ≤ hi.
func UniformIntCostFn(lo, hi int) CostFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformIntCostFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(lo)
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}
