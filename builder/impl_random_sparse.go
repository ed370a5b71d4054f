// SPDX-License-Identifier: MIT
// Package: stepsearch/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Model: include each admissible edge independently with probability p.
//   - Directed graphs: ordered pairs (i,j), i != j.
//   - Undirected graphs: unordered pairs {i,j} with i<j; core mirrors them.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be set when 0 < p < 1 (else ErrNeedRandSource).
//   - Nodes come from cfg.idFn in index order; heuristics from
//     cfg.heuristicFn (default 0, which reduces Greedy to FIFO order).
//   - Costs from cfg.costFn.
//
// Complexity: O(n) nodes + O(n²) Bernoulli trials.
//
// Determinism: trial order is i asc, then j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseNodes = 1
)

// RandomSparse returns a Constructor that samples a sparse random graph over
// n nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseNodes, ErrTooFewNodes)
		}
		if !validProbability(p) {
			return fmt.Errorf("%s: p=%.6f not in [0.0,1.0]: %w",
				methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := addNode(methodRandomSparse, g, ids[i], cfg.heuristic(i, ids[i], 0)); err != nil {
				return err
			}
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := 0
			if !directed {
				start = i + 1
			}
			for j := start; j < n; j++ {
				if i == j || !trial(cfg, p) {
					continue
				}
				if err := addEdge(methodRandomSparse, g, ids[i], ids[j], cfg.costFn(cfg.rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
