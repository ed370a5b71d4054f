// SPDX-License-Identifier: MIT
// Package: stepsearch/builder
//
// impl_classroom.go - the 20-node teaching graph.
//
// Layout (row-major, heuristics shrink towards the default goal T):
//
//	A4  B4  C4  D4
//	E3  F3  G3  H3
//	I3  J2  K2  L2
//	M3  N2  O1  P1
//	Q2  R1  S1  T0
//
// Each node lists its candidate neighbours (classroomTemplate). Every
// candidate is kept with probability p and gets a cost from cfg.costFn
// (default for Classroom: integers 1..10). In undirected graphs core mirrors
// each kept edge, and a later candidate whose edge already exists is skipped.
//
// Determinism: one Bernoulli trial per candidate in template order, then one
// cost draw per kept candidate.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

const methodClassroom = "Classroom"

// ClassroomEdgeProbability is the share of template edges kept in the demo graph.
const ClassroomEdgeProbability = 0.33

// Classroom cost range used when no CostFn option is given.
const (
	ClassroomMinCost = 1
	ClassroomMaxCost = 10
)

// classroomNode is a template node with its neighbour candidates.
type classroomNode struct {
	id        string
	heuristic float64
	next      []string
}

var classroomTemplate = []classroomNode{
	{"A", 4, []string{"B", "E", "F"}},
	{"B", 4, []string{"A", "C", "E", "F", "G"}},
	{"C", 4, []string{"B", "D", "F", "G", "H"}},
	{"D", 4, []string{"C", "G", "H"}},
	{"E", 3, []string{"A", "B", "F", "I", "J"}},
	{"F", 3, []string{"A", "B", "C", "E", "G", "I", "J", "K"}},
	{"G", 3, []string{"B", "C", "D", "F", "H", "J", "K", "L"}},
	{"H", 3, []string{"C", "D", "G", "K", "L"}},
	{"I", 3, []string{"E", "F", "J", "N", "M"}},
	{"J", 2, []string{"E", "F", "G", "I", "K", "M", "N", "O"}},
	{"K", 2, []string{"F", "G", "H", "J", "L", "N", "O", "P"}},
	{"L", 2, []string{"G", "H", "K", "O", "P"}},
	{"M", 3, []string{"I", "J", "N", "Q", "R"}},
	{"N", 2, []string{"I", "J", "K", "M", "O", "Q", "R", "S"}},
	{"O", 1, []string{"J", "K", "L", "N", "P", "R", "S", "T"}},
	{"P", 1, []string{"K", "L", "O", "S", "T"}},
	{"Q", 2, []string{"M", "N", "R"}},
	{"R", 1, []string{"M", "N", "O", "Q", "S"}},
	{"S", 1, []string{"N", "O", "P", "R", "T"}},
	{"T", 0, []string{"O", "P", "S"}},
}

// ClassroomNodeIDs returns the template node IDs in insertion order.
func ClassroomNodeIDs() []string {
	out := make([]string, len(classroomTemplate))
	for i, n := range classroomTemplate {
		out[i] = n.id
	}

	return out
}

// Classroom returns a Constructor that adds the teaching graph, keeping each
// template edge with probability p. Unless WithCostFn was given, costs are
// integers drawn from [ClassroomMinCost, ClassroomMaxCost]. A configured
// HeuristicFn replaces the template heuristics.
func Classroom(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if !validProbability(p) {
			return fmt.Errorf("%s: p=%.6f not in [0.0,1.0]: %w", methodClassroom, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodClassroom, ErrNeedRandSource)
		}

		for i, n := range classroomTemplate {
			if err := addNode(methodClassroom, g, n.id, cfg.heuristic(i, n.id, n.heuristic)); err != nil {
				return err
			}
		}

		cost := cfg.costFn
		if isDefaultCost(cfg) {
			cost = UniformIntCostFn(ClassroomMinCost, ClassroomMaxCost)
		}
		for _, n := range classroomTemplate {
			for _, to := range n.next {
				if !trial(cfg, p) {
					continue
				}
				c := cost(cfg.rng)
				if g.HasEdge(n.id, to) {
					continue
				}
				if err := addEdge(methodClassroom, g, n.id, to, c); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial performs one Bernoulli trial. p of 0 or 1 never touches the RNG.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case 0:
		return false
	case 1:
		return true
	}

	return cfg.rng.Float64() < p
}
