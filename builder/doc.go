// SPDX-License-Identifier: MIT
// Package builder constructs road networks for the budgeted route search:
// the two fixed city maps, parametric grids and seeded random networks.
//
// Components:
//
//   - BuildGraph(bopts, cons...): creates a core.Graph and applies
//     Constructor closures in order.
//   - Cities(CityMapSample|CityMapTradeoff), with SampleGraph, TradeoffGraph
//     and Sample(name) shortcuts.
//   - Grid(rows, cols): orthogonal roads, optional diagonal shortcuts.
//   - RandomSparse(n, p): independent roads with probability p.
//
// Options:
//
//   - WithSeed / WithRand   seeded RNG for stochastic constructors and costs.
//   - WithCostFn            price of orthogonal and random roads.
//   - WithDiagonals         enable grid diagonals, optionally re-priced.
//   - WithIDScheme          vertex IDs for RandomSparse.
//   - WithSpacing           layout distance between neighbouring positions.
//
// Cost functions: ConstCost(d, c) and UniformCost(maxD, maxC).
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrUnknownCityMap, ErrConstructFailed.
//
// Determinism: equal inputs, options and seed produce identical graphs,
// including edge IDs.
package builder
