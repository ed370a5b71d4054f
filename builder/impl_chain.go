// SPDX-License-Identifier: MIT
// Package: stepsearch/builder
//
// impl_chain.go - Chain(ids...) constructor.
//
// Adds ids in order and the edges ids[i]→ids[i+1]. Default heuristic: the
// number of hops left to the last ID. Costs from cfg.costFn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

const (
	methodChain   = "Chain"
	minChainNodes = 2
)

// Chain returns a Constructor that builds the path ids[0]→...→ids[n-1].
func Chain(ids ...string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(ids) < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, len(ids), minChainNodes, ErrTooFewNodes)
		}

		last := len(ids) - 1
		for i, id := range ids {
			if err := addNode(methodChain, g, id, cfg.heuristic(i, id, float64(last-i))); err != nil {
				return err
			}
		}
		for i := 0; i < last; i++ {
			if err := addEdge(methodChain, g, ids[i], ids[i+1], cfg.costFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
