// SPDX-License-Identifier: MIT
// Package: stepsearch/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn        = DefaultIDFn      ("0","1","2",...)
//   - rng         = nil              (stochastic constructors fail without one)
//   - costFn      = DefaultCostFn    (every edge costs 1)
//   - heuristicFn = nil              (each constructor picks its natural heuristic)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn        IDFn
	rng         *rand.Rand
	costFn      CostFn
	heuristicFn HeuristicFn

	// costUnset is true until WithCostFn runs; constructors may then pick
	// their own natural cost range.
	costUnset bool
}

// newBuilderConfig applies opts over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		costFn:    DefaultCostFn,
		costUnset: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// heuristic returns cfg.heuristicFn(idx, id) when set, otherwise fallback.
func (c builderConfig) heuristic(idx int, id string, fallback float64) float64 {
	if c.heuristicFn == nil {
		return fallback
	}

	return c.heuristicFn(idx, id)
}

// isDefaultCost reports whether no CostFn option replaced DefaultCostFn.
func isDefaultCost(c builderConfig) bool {
	return c.costUnset
}
