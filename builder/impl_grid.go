// SPDX-License-Identifier: MIT
// Package: stepsearch/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Nodes use the fixed coordinate scheme "r,c" in row-major order.
// Edges connect each cell to its right and bottom neighbours (right first);
// in undirected graphs core mirrors them, in directed graphs only the
// right/down moves exist. Default heuristic: Manhattan distance to the
// bottom-right cell, which is admissible when every cost is ≥ 1.
//
// Complexity: O(rows*cols) nodes and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the node ID of cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				manhattan := float64((rows - 1 - r) + (cols - 1 - c))
				if err := addNode(methodGrid, g, id, cfg.heuristic(r*cols+c, id, manhattan)); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(methodGrid, g, GridID(r, c), GridID(r, c+1), cfg.costFn(cfg.rng)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, GridID(r, c), GridID(r+1, c), cfg.costFn(cfg.rng)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
