// SPDX-License-Identifier: MIT
// Package bfs walks the road network breadth-first, counting roads (hops)
// and ignoring both costs. It answers connectivity questions: which cities
// are reachable at all, in how few roads, and how the map splits into
// components.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/coinpath/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Options holds parameters for a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxHops, if > 0, stops exploring beyond this many roads from the start.
	MaxHops int

	// Road reports whether the walk may use the road from a city to nb.
	Road func(from string, nb core.Neighbor) bool
}

// Option configures a walk.
type Option func(*Options)

// DefaultOptions returns an unlimited walk over every road.
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Road: func(string, core.Neighbor) bool { return true },
	}
}

// WithContext sets a context for cancellation. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("bfs: nil context")
	}

	return func(o *Options) { o.Ctx = ctx }
}

// WithMaxHops limits the walk to n roads from the start; 0 means no limit.
// Panics on n < 0.
func WithMaxHops(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("bfs: MaxHops cannot be negative (%d)", n))
	}

	return func(o *Options) { o.MaxHops = n }
}

// WithRoadFilter restricts the walk to roads accepted by fn. Panics on nil.
func WithRoadFilter(fn func(from string, nb core.Neighbor) bool) Option {
	if fn == nil {
		panic("bfs: nil road filter")
	}

	return func(o *Options) { o.Road = fn }
}

// WithMaxToll keeps only roads costing at most coins.
func WithMaxToll(coins int64) Option {
	return WithRoadFilter(func(_ string, nb core.Neighbor) bool { return nb.Coins <= coins })
}

// Result holds the outcome of a walk:
//   - Order: cities in visit sequence.
//   - Hops: roads from the start to each reached city.
//   - Parent: predecessor of each reached city in the BFS tree.
type Result struct {
	Order  []string
	Hops   map[string]int
	Parent map[string]string
}

// Reached reports whether id was visited.
func (r *Result) Reached(id string) bool {
	_, ok := r.Hops[id]

	return ok
}

// PathTo returns the fewest-roads route from the start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
