// SPDX-License-Identifier: MIT
package dfs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/coinpath/core"
)

// walker holds the recursion state of one enumeration.
type walker struct {
	g     *core.Graph
	goal  string
	opts  Options
	state map[string]int
	path  []string
	found int
	visit func(Route) error
}

// Walk calls visit for every simple route from source to goal that fits the
// options, in depth-first order with neighbours taken in road insertion
// order. Returning ErrStop from visit ends the walk with a nil error; any
// other visit error is returned as is.
//
// Complexity: O(V!) in the worst case.
func Walk(g *core.Graph, source, goal string, visit func(Route) error, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	for _, id := range []string{source, goal} {
		if !g.HasVertex(id) {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}

	w := &walker{
		g:     g,
		goal:  goal,
		opts:  o,
		state: make(map[string]int, g.VertexCount()),
		visit: visit,
	}
	err := w.step(source, 0, 0)
	if errors.Is(err, ErrStop) {
		return nil
	}

	return err
}

// Routes collects the routes Walk visits, sorted by distance, then coins,
// then path. With WithLimit the first routes in walk order are kept.
func Routes(g *core.Graph, source, goal string, opts ...Option) ([]Route, error) {
	var out []Route
	err := Walk(g, source, goal, func(r Route) error {
		out = append(out, r)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.Coins != b.Coins {
			return a.Coins < b.Coins
		}

		return lessPath(a.Path, b.Path)
	})

	return out, nil
}

func (w *walker) step(v string, dist, coins int64) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.state[v] = Gray
	w.path = append(w.path, v)
	defer func() {
		w.state[v] = White
		w.path = w.path[:len(w.path)-1]
	}()

	if v == w.goal {
		return w.emit(dist, coins)
	}
	if w.opts.MaxRoads > 0 && len(w.path)-1 >= w.opts.MaxRoads {
		return nil
	}

	neighbors, err := w.g.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", v, err)
	}
	for _, nb := range neighbors {
		if w.state[nb.ID] == Gray || coins+nb.Coins > w.opts.MaxCoins {
			continue
		}
		if err = w.step(nb.ID, dist+nb.Distance, coins+nb.Coins); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) emit(dist, coins int64) error {
	path := make([]string, len(w.path))
	copy(path, w.path)
	if err := w.visit(Route{Path: path, Distance: dist, Coins: coins}); err != nil {
		return err
	}
	w.found++
	if w.opts.Limit > 0 && w.found >= w.opts.Limit {
		return ErrStop
	}

	return nil
}

func lessPath(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
