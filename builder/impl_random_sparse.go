// SPDX-License-Identifier: MIT
// Package: coinpath/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like: each unordered pair {i,j}, i<j, becomes a road
//     independently with probability p, priced by cfg.costFn.
//   - Vertex IDs via cfg.idFn, heuristic 0, positions evenly spaced on a
//     circle of radius cfg.spacing.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism: trials run i asc, j asc; for a fixed seed the graph is fixed.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coinpath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random road network over
// n vertices with independent road probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		step := 2 * math.Pi / float64(n)
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			x := cfg.spacing * math.Cos(step*float64(i))
			y := cfg.spacing * math.Sin(step*float64(i))
			if err := g.AddVertex(id, 0, core.WithPosition(x, y)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, id, err)
			}
		}

		var u, v string
		for i := 0; i < n; i++ {
			u = cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				if !trial(cfg, p) {
					continue
				}
				v = cfg.idFn(j)
				d, coins := cfg.costFn(cfg.rng)
				if _, err := g.Connect(u, v, d, coins); err != nil {
					return fmt.Errorf("%s: Connect(%s-%s, d=%d, c=%d): %w",
						methodRandomSparse, u, v, d, coins, err)
				}
			}
		}

		return nil
	}
}

// trial is one Bernoulli draw; p of 0 or 1 needs no RNG.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
