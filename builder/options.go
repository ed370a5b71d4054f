// SPDX-License-Identifier: MIT
// Package: stepsearch/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate their arguments and panic on meaningless
// input; constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node ID generator: idx -> ID. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCostFn overrides the edge cost generator. Panics on nil.
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}

	return func(c *builderConfig) {
		c.costFn = fn
		c.costUnset = false
	}
}

// WithHeuristicFn overrides the node heuristic generator. Panics on nil.
func WithHeuristicFn(fn HeuristicFn) BuilderOption {
	if fn == nil {
		panic("builder: WithHeuristicFn(nil)")
	}

	return func(c *builderConfig) { c.heuristicFn = fn }
}

// WithConstantCost sets every edge cost to w.
func WithConstantCost(w float64) BuilderOption {
	return WithCostFn(ConstantCostFn(w))
}

// WithUniformIntCost draws integer costs uniformly from [lo, hi].
func WithUniformIntCost(lo, hi int) BuilderOption {
	return WithCostFn(UniformIntCostFn(lo, hi))
}
