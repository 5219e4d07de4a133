// SPDX-License-Identifier: MIT
package constrained

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/katalvlaran/coinpath/core"
	"github.com/katalvlaran/coinpath/dijkstra"
)

// FindPath returns the minimum-distance path from source to goal among all
// paths whose coin total does not exceed budget.
//
// Returns:
//
//   - (*Result, nil) on success: Path, Distance, Coins and Trace are set.
//   - (*Result, *InfeasibleError) when no path fits the budget; the Result
//     carries the trace of the exhausted search. errors.Is(err, ErrNoFeasiblePath).
//   - (*Result, ErrExpansionLimit) when WithMaxExpansions stopped the search.
//   - (nil, err) for invalid queries.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. budget ≥ 0 (ErrNegativeBudget).
//  3. source and goal must exist (wrapped core.ErrVertexNotFound).
//  4. source != goal (ErrTrivialQuery).
//
// Complexity:
//
//   - Labels are bounded by V·(budget+1); each push/pop is O(log L).
func FindPath(g *core.Graph, source, goal string, budget int64, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the query
	if g == nil {
		return nil, ErrNilGraph
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("constrained: source %q: %w", source, core.ErrVertexNotFound)
	}
	if !g.HasVertex(goal) {
		return nil, fmt.Errorf("constrained: goal %q: %w", goal, core.ErrVertexNotFound)
	}
	if source == goal {
		return nil, fmt.Errorf("%w: %s", ErrTrivialQuery, source)
	}
	if cfg.Heuristic == nil {
		cfg.Heuristic = StoredHeuristic(g)
	}

	// 3) Run
	r := &runner{
		g:       g,
		options: cfg,
		goal:    goal,
		budget:  budget,
		seen:    make(map[string]struct{}),
		settled: newSettled(cfg.Pruning),
	}
	r.pq.arena = &r.arena

	cfg.Logger.Debug("search started",
		"source", source, "goal", goal, "budget", budget, "pruning", cfg.Pruning.String())

	res, err := r.run(source)

	cfg.Logger.Debug("search finished",
		"found", res.Found(), "distance", res.Distance, "coins", res.Coins,
		"expanded", res.Expanded, "pushed", res.Pushed)

	if errors.Is(err, ErrNoFeasiblePath) {
		return res, r.diagnose(source)
	}

	return res, err
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *core.Graph // read-only input graph
	options Options
	goal    string
	budget  int64

	arena   []label             // every label ever pushed
	pq      labelPQ             // frontier over arena indices
	nextSeq uint64              // push counter for tie-breaking
	settled settled             // dominance bookkeeping
	seen    map[string]struct{} // vertices already recorded in trace.Visited
	trace   Trace
	pushed  int
}

// push appends a label to the arena and enqueues it.
func (r *runner) push(l label) {
	l.seq = r.nextSeq
	r.nextSeq++
	r.arena = append(r.arena, l)
	heap.Push(&r.pq, len(r.arena)-1)
	r.pushed++
}

// run is the main loop: pop by (f, seq), record the visit, prune, test the
// goal, expand within budget.
func (r *runner) run(source string) (*Result, error) {
	heap.Init(&r.pq)
	r.push(label{
		vertex: source,
		f:      estimate(r.options.Heuristic(source), 0),
		parent: noParent,
	})

	expanded := 0
	for r.pq.Len() > 0 {
		idx := heap.Pop(&r.pq).(int)
		cur := r.arena[idx]

		// Record the first visit of each vertex, before any pruning.
		if _, ok := r.seen[cur.vertex]; !ok {
			r.seen[cur.vertex] = struct{}{}
			r.trace.Visited = append(r.trace.Visited, cur.vertex)
		}

		if r.settled.dominated(cur.vertex, cur.coins, cur.dist) {
			continue
		}
		r.settled.settle(cur.vertex, cur.coins, cur.dist)

		if cur.vertex == r.goal {
			res := r.result(expanded)
			res.Path = r.path(idx)
			res.Distance = cur.dist
			res.Coins = cur.coins

			return res, nil
		}

		if r.options.MaxExpansions > 0 && expanded >= r.options.MaxExpansions {
			return r.result(expanded), fmt.Errorf("%w: %d", ErrExpansionLimit, expanded)
		}
		expanded++

		if err := r.expand(idx); err != nil {
			return r.result(expanded), err
		}
	}

	return r.result(expanded), ErrNoFeasiblePath
}

// expand pushes every in-budget relaxation of the label at arena index idx.
func (r *runner) expand(idx int) error {
	cur := r.arena[idx]
	neighbors, err := r.g.Neighbors(cur.vertex)
	if err != nil {
		return fmt.Errorf("constrained: neighbors of %q: %w", cur.vertex, err)
	}

	var nb core.Neighbor
	for _, nb = range neighbors {
		// 0 ≤ cur.coins ≤ budget, so the remainder cannot overflow.
		if nb.Coins > r.budget-cur.coins {
			continue
		}
		coins := cur.coins + nb.Coins
		dist := saturatingAdd(cur.dist, nb.Distance)

		h := r.options.Heuristic(nb.ID)
		if h == Infinite {
			continue
		}
		// Pareto mode also skips pushes that a settled label already dominates.
		if r.options.Pruning == PrunePareto && r.settled.dominated(nb.ID, coins, dist) {
			continue
		}

		r.trace.Relaxed = append(r.trace.Relaxed, Step{From: cur.vertex, To: nb.ID})
		r.push(label{
			vertex: nb.ID,
			coins:  coins,
			dist:   dist,
			f:      estimate(h, dist),
			parent: idx,
		})
	}

	return nil
}

// estimate returns dist + h, saturating instead of overflowing.
// Negative estimates are treated as zero.
func estimate(h, dist int64) int64 {
	if h < 0 {
		h = 0
	}
	if h > Infinite-dist {
		return Infinite
	}

	return dist + h
}

// saturatingAdd returns a + b for non-negative operands, capped at Infinite.
func saturatingAdd(a, b int64) int64 {
	if b > Infinite-a {
		return Infinite
	}

	return a + b
}

// path walks parent links from the label at idx back to the root.
func (r *runner) path(idx int) []string {
	var out []string
	for i := idx; i != noParent; i = r.arena[i].parent {
		out = append(out, r.arena[i].vertex)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// result packages the trace and counters.
func (r *runner) result(expanded int) *Result {
	return &Result{
		Trace:    r.trace,
		Expanded: expanded,
		Pushed:   r.pushed,
	}
}

// diagnose builds the InfeasibleError: is the goal reachable at all, and
// with what minimum coin budget.
func (r *runner) diagnose(source string) error {
	ie := &InfeasibleError{Source: source, Goal: r.goal, Budget: r.budget}
	coins, _, err := dijkstra.Dijkstra(r.g, dijkstra.Source(source), dijkstra.WithMetric(dijkstra.Coins))
	if err != nil {
		return fmt.Errorf("constrained: diagnose: %w", err)
	}
	if c, ok := coins[r.goal]; ok && c != dijkstra.Unreachable {
		ie.Reachable = true
		ie.MinCoins = c
	}

	return ie
}
