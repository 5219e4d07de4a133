// SPDX-License-Identifier: MIT
package constrained

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coinpath/core"
	"github.com/katalvlaran/coinpath/dijkstra"
)

// Infinite is the heuristic value meaning "the goal cannot be reached from here".
// Labels at such vertices are never enqueued.
const Infinite = int64(math.MaxInt64)

// Heuristic estimates the remaining distance from a vertex to the goal of the
// current query. For optimal results it must be admissible and consistent
// with respect to Distance alone; coin costs must not leak into it.
type Heuristic func(id string) int64

// ZeroHeuristic turns the search into a label-setting Dijkstra.
func ZeroHeuristic(string) int64 { return 0 }

// StoredHeuristic snapshots the per-vertex values stored in g. Those values
// were drawn for one fixed goal; they are only valid when searching for it.
func StoredHeuristic(g *core.Graph) Heuristic {
	table := make(map[string]int64, g.VertexCount())
	for _, id := range g.Vertices() {
		h, err := g.Heuristic(id)
		if err != nil {
			continue
		}
		table[id] = h
	}

	return TableHeuristic(table)
}

// TableHeuristic looks values up in a caller-supplied table; missing IDs estimate 0.
func TableHeuristic(table map[string]int64) Heuristic {
	return func(id string) int64 { return table[id] }
}

// ExactHeuristic returns the true remaining distance to goal for every vertex,
// computed with a Distance Dijkstra rooted at goal. Vertices that cannot reach
// goal estimate Infinite. The result is admissible and consistent for goal.
func ExactHeuristic(g *core.Graph, goal string) (Heuristic, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(goal) {
		return nil, fmt.Errorf("constrained: goal %q: %w", goal, core.ErrVertexNotFound)
	}
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(goal))
	if err != nil {
		return nil, fmt.Errorf("constrained: exact heuristic for %q: %w", goal, err)
	}

	return func(id string) int64 {
		d, ok := dist[id]
		if !ok || d == dijkstra.Unreachable {
			return Infinite
		}

		return d
	}, nil
}

// ParseHeuristic resolves a heuristic by name for the given query:
// "stored" (or empty), "zero", or "exact".
func ParseHeuristic(name string, g *core.Graph, goal string) (Heuristic, error) {
	switch name {
	case "", "stored":
		return StoredHeuristic(g), nil
	case "zero":
		return ZeroHeuristic, nil
	case "exact":
		return ExactHeuristic(g, goal)
	default:
		return nil, fmt.Errorf("%w: heuristic %q", ErrUnknownStrategy, name)
	}
}
