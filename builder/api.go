// SPDX-License-Identifier: MIT
// Package: coinpath/builder
//
// api.go - public entry points for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories return Constructor closures, implemented in impl_*.go.
//   - Determinism: same inputs, options, seed and constructor order give identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with %w.

package builder

import (
	"fmt"

	"github.com/katalvlaran/coinpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts and applies all constructors in order. The first constructor
// error is wrapped with "BuildGraph: %w" and returned.
//
// Complexity: O(len(bopts)) plus the sum of the constructors' costs.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
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

// SampleGraph returns the standard 3×3 city map: orthogonal roads of
// distance 200 for 2 coins, diagonal shortcuts through E of distance 280 for
// 4 coins. Stored heuristics 1..9 were drawn for goal "I".
func SampleGraph() (*core.Graph, error) {
	return BuildGraph(nil, Cities(CityMapSample))
}

// TradeoffGraph returns the 3×3 city map with sharper trade-offs: 5-coin
// horizontal roads, 3-coin vertical roads and 9-coin diagonal shortcuts.
func TradeoffGraph() (*core.Graph, error) {
	return BuildGraph(nil, Cities(CityMapTradeoff))
}

// Sample builds a built-in city map by name ("sample" or "tradeoff").
func Sample(name string) (*core.Graph, error) {
	m, err := ParseCityMap(name)
	if err != nil {
		return nil, err
	}

	return BuildGraph(nil, Cities(m))
}
