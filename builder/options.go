// SPDX-License-Identifier: MIT
// Package: coinpath/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors validate and panic on meaningless inputs.
//   - Seeding is explicit: WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// CostFn draws the (distance, coins) pair of one edge. The RNG is nil unless
// WithSeed/WithRand was given.
type CostFn func(rng *rand.Rand) (distance, coins int64)

// WithIDScheme sets the vertex ID generator used by RandomSparse. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new seeded *rand.Rand; equal seeds give equal graphs.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCostFn overrides the cost of orthogonal grid roads and random roads.
// Panics on nil.
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}

	return func(c *builderConfig) { c.costFn = fn }
}

// WithDiagonals makes Grid add diagonal shortcuts priced by fn
// (nil keeps the default 280 distance / 4 coins).
func WithDiagonals(fn CostFn) BuilderOption {
	return func(c *builderConfig) {
		c.diagonals = true
		if fn != nil {
			c.diagonalFn = fn
		}
	}
}

// WithSpacing sets the layout distance between neighbouring vertex positions.
// Panics on s ≤ 0.
func WithSpacing(s float64) BuilderOption {
	if s <= 0 {
		panic("builder: WithSpacing(s<=0)")
	}

	return func(c *builderConfig) { c.spacing = s }
}

// ConstCost returns a CostFn that always yields (distance, coins).
// Panics on negative values.
func ConstCost(distance, coins int64) CostFn {
	if distance < 0 || coins < 0 {
		panic("builder: ConstCost with negative cost")
	}

	return func(*rand.Rand) (int64, int64) { return distance, coins }
}

// UniformCost returns a CostFn drawing distance from [1, maxDistance] and
// coins from [0, maxCoins]. Without an RNG it yields (maxDistance, maxCoins).
// Panics if maxDistance < 1 or maxCoins < 0.
func UniformCost(maxDistance, maxCoins int64) CostFn {
	if maxDistance < 1 || maxCoins < 0 {
		panic("builder: UniformCost bounds out of range")
	}

	return func(rng *rand.Rand) (int64, int64) {
		if rng == nil {
			return maxDistance, maxCoins
		}

		return 1 + rng.Int63n(maxDistance), rng.Int63n(maxCoins + 1)
	}
}
