// SPDX-License-Identifier: MIT
// Package dfs enumerates simple routes between two cities depth-first.
// A route never repeats a city. Enumeration is exponential in the worst
// case; use it on small maps, to audit a search result, or with a route cap.
package dfs

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Vertex states during the walk.
const (
	White = iota // not on the current route
	Gray         // on the current route
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexNotFound indicates that an endpoint does not exist.
	ErrVertexNotFound = errors.New("dfs: vertex not found")

	// ErrStop may be returned by a Walk callback to end enumeration
	// early without reporting an error.
	ErrStop = errors.New("dfs: stop")
)

// Route is one simple source→goal route with its totals.
type Route struct {
	Path     []string `json:"path"`
	Distance int64    `json:"distance"`
	Coins    int64    `json:"coins"`
}

// Options holds parameters for Walk and Routes.
type Options struct {
	// Ctx allows cancellation; checked once per visited city.
	Ctx context.Context

	// MaxCoins prunes any partial route whose coins exceed it.
	MaxCoins int64

	// MaxRoads, if > 0, prunes routes longer than this many roads.
	MaxRoads int

	// Limit, if > 0, stops after this many routes in walk order.
	Limit int
}

// Option configures Walk and Routes.
type Option func(*Options)

// DefaultOptions returns an uncapped enumeration.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxCoins: math.MaxInt64}
}

// WithContext sets a context for cancellation. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("dfs: nil context")
	}

	return func(o *Options) { o.Ctx = ctx }
}

// WithMaxCoins keeps only routes costing at most coins. Panics on coins < 0.
func WithMaxCoins(coins int64) Option {
	if coins < 0 {
		panic(fmt.Sprintf("dfs: MaxCoins cannot be negative (%d)", coins))
	}

	return func(o *Options) { o.MaxCoins = coins }
}

// WithMaxRoads keeps only routes of at most n roads. Panics on n < 0.
func WithMaxRoads(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("dfs: MaxRoads cannot be negative (%d)", n))
	}

	return func(o *Options) { o.MaxRoads = n }
}

// WithLimit stops after n routes; 0 means unlimited. Panics on n < 0.
func WithLimit(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("dfs: Limit cannot be negative (%d)", n))
	}

	return func(o *Options) { o.Limit = n }
}
