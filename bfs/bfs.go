// SPDX-License-Identifier: MIT
package bfs

import (
	"fmt"

	"github.com/katalvlaran/coinpath/core"
)

// queueItem pairs a city with its hop count.
type queueItem struct {
	id   string
	hops int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS walks g from startID in order of increasing hop count. Neighbours are
// taken in road insertion order, so Order is deterministic.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors, or the
// context's error on cancellation.
//
// Complexity: O(V + E).
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Hops:   make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, hops int, parent string) {
	w.res.Hops[id] = hops
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, hops: hops})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		if w.opts.MaxHops > 0 && item.hops >= w.opts.MaxHops {
			continue
		}
		neighbors, err := w.graph.Neighbors(item.id)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrNeighbors, item.id, err)
		}
		for _, nb := range neighbors {
			if !w.opts.Road(item.id, nb) || w.res.Reached(nb.ID) {
				continue
			}
			w.enqueue(nb.ID, item.hops+1, item.id)
		}
	}

	return nil
}

// Components splits g into connected components. Components are ordered by
// their first city in insertion order; cities within a component are in BFS
// order from that city.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}
