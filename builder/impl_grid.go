// SPDX-License-Identifier: MIT
// Package: coinpath/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Model:
//   - rows×cols city grid; vertex IDs "r,c" in row-major order, heuristic 0,
//     position (c·spacing, r·spacing).
//   - Orthogonal roads to the right and bottom neighbours, priced by cfg.costFn.
//   - With WithDiagonals, shortcuts to bottom-right and bottom-left, priced by
//     cfg.diagonalFn.
//
// Complexity: O(rows·cols) vertices and edges.
//
// Determinism: per cell, roads are emitted right, bottom, bottom-right,
// bottom-left; costs are drawn in that order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/coinpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex ID Grid uses for cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a rows×cols road grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				pos := core.WithPosition(float64(c)*cfg.spacing, float64(r)*cfg.spacing)
				if err := g.AddVertex(id, 0, pos); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		connect := func(u, v string, fn CostFn) error {
			d, coins := fn(cfg.rng)
			if _, err := g.Connect(u, v, d, coins); err != nil {
				return fmt.Errorf("%s: Connect(%s-%s, d=%d, c=%d): %w", methodGrid, u, v, d, coins, err)
			}

			return nil
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := connect(u, GridID(r, c+1), cfg.costFn); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(u, GridID(r+1, c), cfg.costFn); err != nil {
						return err
					}
				}
				if !cfg.diagonals || r+1 >= rows {
					continue
				}
				if c+1 < cols {
					if err := connect(u, GridID(r+1, c+1), cfg.diagonalFn); err != nil {
						return err
					}
				}
				if c > 0 {
					if err := connect(u, GridID(r+1, c-1), cfg.diagonalFn); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
