// SPDX-License-Identifier: MIT
package constrained

import (
	"sync"

	"github.com/katalvlaran/coinpath/core"
)

// Finder is a reusable search engine instance. It holds default options and
// the exploration trace of its most recent call, which presentation layers
// read to animate the search. Calls on one Finder are serialised; use one
// Finder per goroutine (or FindPath directly) for parallel queries.
type Finder struct {
	mu   sync.Mutex
	opts []Option
	last Trace
}

// NewFinder returns a Finder applying opts to every search.
func NewFinder(opts ...Option) *Finder {
	return &Finder{opts: opts}
}

// Find runs FindPath with the Finder's options followed by opts.
// The previous trace is discarded before the search starts and replaced by
// this call's trace, on success and on infeasibility alike.
func (f *Finder) Find(g *core.Graph, source, goal string, budget int64, opts ...Option) (*Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.last = Trace{}
	all := make([]Option, 0, len(f.opts)+len(opts))
	all = append(all, f.opts...)
	all = append(all, opts...)

	res, err := FindPath(g, source, goal, budget, all...)
	if res != nil {
		f.last = res.Trace.clone()
	}

	return res, err
}

// Trace returns a copy of the trace recorded by the most recent Find.
func (f *Finder) Trace() Trace {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.last.clone()
}
