// SPDX-License-Identifier: MIT
// Package dijkstra defines core types and configuration options
// for single-metric Dijkstra over a coin-constrained road network.
//
// Every core.Edge carries two costs. Dijkstra relaxes exactly one of them,
// selected with WithMetric: Distance (default) or Coins. The other cost is
// ignored. Running on Coins answers "what is the smallest budget that can
// reach v at all?"; running on Distance from a goal yields exact
// remaining-distance heuristics for that goal.
//
// Options:
//
//	– Source:       ID of the starting vertex (must be non-empty and present in the graph).
//	– Metric:       which edge cost to minimise (Distance or Coins).
//	– ReturnPath:   if true, return the predecessor map for path reconstruction.
//	– MaxDistance:  optional cap on the selected cost; vertices beyond this are not settled.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadMetric       if the metric is not Distance or Coins.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/coinpath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadMetric indicates an unknown Metric value.
	ErrBadMetric = errors.New("dijkstra: unknown metric")
)

// Unreachable is the value reported in dist for vertices that cannot be reached.
const Unreachable = int64(math.MaxInt64)

// Metric selects which edge cost Dijkstra minimises.
type Metric int

const (
	// Distance minimises the primary cost (core.Edge.Distance).
	Distance Metric = iota

	// Coins minimises the secondary cost (core.Edge.Coins).
	Coins
)

// String returns "distance" or "coins".
func (m Metric) String() string {
	switch m {
	case Distance:
		return "distance"
	case Coins:
		return "coins"
	default:
		return "unknown"
	}
}

// cost returns the selected cost of a hop.
func (m Metric) cost(nb core.Neighbor) int64 {
	if m == Coins {
		return nb.Coins
	}

	return nb.Distance
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex ID (must be non-empty and present in the graph).
// Metric      – edge cost to minimise. Default Distance.
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – cap on the selected cost (vertices beyond are not settled).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Source      string // The ID of the source vertex
	Metric      Metric // Which edge cost to relax
	ReturnPath  bool   // Whether to return the predecessor map
	MaxDistance int64  // Maximum cost to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithMetric selects the edge cost to minimise.
// Panics on values other than Distance and Coins.
func WithMetric(m Metric) Option {
	if m != Distance && m != Coins {
		panic(ErrBadMetric.Error())
	}

	return func(o *Options) {
		o.Metric = m
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum threshold on the selected cost.
// Vertices whose best cost would exceed this value are not settled.
// Panics on negative values (invalid configuration fails early).
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex ID.
//
// Defaults:
//   - Source:      <as passed> (validated in Dijkstra).
//   - Metric:      Distance.
//   - ReturnPath:  false.
//   - MaxDistance: math.MaxInt64 (no limit).
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		Metric:      Distance,
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
	}
}
