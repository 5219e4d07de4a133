// SPDX-License-Identifier: MIT
// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// two-cost road network, relaxing one selected metric.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - core rejects negative costs at Connect time, so no pre-scan is needed.
//   - We stop exploring once the minimum cost in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/coinpath/core"
)

// Dijkstra computes the smallest selected-metric cost from Options.Source to
// every vertex of g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum cost (Unreachable if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means one cheapest path to v goes through u.
//     For the source and unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %s", ErrVertexNotFound, cfg.Source)
	}

	// 3) Prepare state
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}

	// 4) Run
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the source→target vertex sequence from a predecessor map
// produced with WithReturnPath. It returns nil if target was not reached.
func PathTo(prev map[string]string, source, target string) []string {
	if target == source {
		return []string{source}
	}
	if prev[target] == "" {
		return nil
	}
	var path []string
	for cur := target; cur != ""; cur = prev[cur] {
		path = append(path, cur)
		if cur == source {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // The input graph; read-only within Dijkstra.
	options Options           // Configuration options.
	dist    map[string]int64  // vertex ID → current best cost from Source.
	prev    map[string]string // vertex ID → predecessor (nil unless ReturnPath).
	visited map[string]bool   // Tracks if a vertex's cost is finalized.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist[v]=Unreachable for all v, dist[Source]=0, and seeds the heap.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = Unreachable
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the cheapest unsettled vertex and relaxes its edges,
// until the heap is empty or the cheapest entry exceeds MaxDistance.
func (r *runner) process() error {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)

		// Skip stale heap entries.
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the cost of every neighbour of u via u.
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var nb core.Neighbor
	var newDist int64
	var cost int64
	for _, nb = range neighbors {
		// r.dist[u] ≤ MaxDistance, so comparing against the remainder cannot overflow.
		cost = r.options.Metric.cost(nb)
		if cost > r.options.MaxDistance-r.dist[u] {
			continue
		}
		newDist = r.dist[u] + cost
		// Strictly better only, to avoid pushing duplicates on ties.
		if newDist >= r.dist[nb.ID] {
			continue
		}

		r.dist[nb.ID] = newDist
		if r.prev != nil {
			r.prev[nb.ID] = u
		}
		heap.Push(&r.pq, &nodeItem{id: nb.ID, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current cost from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // cost from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending ("lazy-decrease-key").
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element (heap.Pop has already swapped the minimum there).
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
