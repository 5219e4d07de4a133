// SPDX-License-Identifier: MIT
package constrained

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/coinpath/core"
)

// Evaluate sums the distance and coin cost of a caller-built path, such as a
// route a player assembled by hand, so it can be compared with FindPath.
// A single-vertex path costs nothing. Totals saturate at Infinite.
//
// Errors:
//   - ErrNilGraph, ErrEmptyPath.
//   - wrapped core.ErrVertexNotFound for an unknown vertex.
//   - ErrNotAdjacent when two consecutive vertices share no edge.
func Evaluate(g *core.Graph, path []string) (distance, coins int64, err error) {
	if g == nil {
		return 0, 0, ErrNilGraph
	}
	if len(path) == 0 {
		return 0, 0, ErrEmptyPath
	}
	for _, id := range path {
		if !g.HasVertex(id) {
			return 0, 0, fmt.Errorf("constrained: path vertex %q: %w", id, core.ErrVertexNotFound)
		}
	}

	for i := 1; i < len(path); i++ {
		e, err := g.Edge(path[i-1], path[i])
		if errors.Is(err, core.ErrEdgeNotFound) {
			return 0, 0, fmt.Errorf("%w: %s-%s (position %d)", ErrNotAdjacent, path[i-1], path[i], i)
		}
		if err != nil {
			return 0, 0, err
		}
		distance = saturatingAdd(distance, e.Distance)
		coins = saturatingAdd(coins, e.Coins)
	}

	return distance, coins, nil
}
