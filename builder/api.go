// SPDX-License-Identifier: MIT
// Package: stepsearch/builder
//
// api.go - BuildGraph orchestrator and the Constructor contract.
//
// Constructors (implemented in impl_*.go):
//
//	Classroom(p)           20-node teaching graph A..T, template edges kept with probability p
//	RandomSparse(n, p)     Bernoulli edge trials over n nodes
//	Grid(rows, cols)       4-neighbour grid, Manhattan heuristic to the last cell
//	Chain(ids...)          fixed path ids[0]→ids[1]→...
//
// Same inputs, options, seed and constructor order give identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves the builder
// configuration from bopts and applies cons in order. The first failing
// constructor aborts the build; its error is wrapped as "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNode inserts id with heuristic h, tagging failures with the constructor name.
func addNode(method string, g *core.Graph, id string, h float64) error {
	if err := g.AddNode(id, h); err != nil {
		return fmt.Errorf("%s: AddNode(%s, h=%g): %w: %w", method, id, h, ErrConstructFailed, err)
	}

	return nil
}

// addEdge inserts from→to with cost c, tagging failures with the constructor name.
func addEdge(method string, g *core.Graph, from, to string, c float64) error {
	if err := g.AddEdge(from, to, c); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, c=%g): %w: %w", method, from, to, c, ErrConstructFailed, err)
	}

	return nil
}

// validProbability reports whether p lies in [0,1].
func validProbability(p float64) bool {
	return p >= 0 && p <= 1
}
