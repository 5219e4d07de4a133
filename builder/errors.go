// SPDX-License-Identifier: MIT
// Package: coinpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w ("Grid: rows=0 ...: <sentinel>").
//   - Option constructors (WithX) panic on meaningless values; constructors never do.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownCityMap indicates a city map name that Cities/Sample do not know.
var ErrUnknownCityMap = errors.New("builder: unknown city map")

// ErrConstructFailed indicates a nil constructor or an unexpected core failure.
var ErrConstructFailed = errors.New("builder: construction failed")
