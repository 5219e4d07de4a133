// SPDX-License-Identifier: MIT
// Package: coinpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn       = decimalID                   ("0","1","2",...)
//   - rng        = nil                          (deterministic unless seeded)
//   - costFn     = ConstCost(200, 2)            orthogonal road of the city maps
//   - diagonals  = false
//   - diagonalFn = ConstCost(280, 4)            diagonal shortcut of the city maps
//   - spacing    = 200                          layout units between neighbours

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn       func(int) string
	rng        *rand.Rand
	costFn     CostFn
	diagonals  bool
	diagonalFn CostFn
	spacing    float64
}

const (
	defaultRoadDistance     = int64(200)
	defaultRoadCoins        = int64(2)
	defaultDiagonalDistance = int64(280)
	defaultDiagonalCoins    = int64(4)
	defaultSpacing          = 200.0
)

// newBuilderConfig applies opts over the defaults, last one wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       decimalID,
		costFn:     ConstCost(defaultRoadDistance, defaultRoadCoins),
		diagonalFn: ConstCost(defaultDiagonalDistance, defaultDiagonalCoins),
		spacing:    defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func decimalID(i int) string {
	return strconv.Itoa(i)
}
