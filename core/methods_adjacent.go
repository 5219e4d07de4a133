// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Neighbors() follows edge insertion order, which is stable for a given
//     construction sequence; searches rely on it for reproducible traces.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.

package core

import "fmt"

// Neighbors returns every one-hop move out of id with its edge costs.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Under muVert read lock, validate existence (ErrVertexNotFound).
//   - Stage 3: Under muEdgeAdj read lock, map incident edges to Neighbor values.
//
// Behavior highlights:
//   - An isolated vertex yields an empty, non-nil slice.
//   - Edges are symmetric: the costs seen from either endpoint are identical.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	incident := g.adjacency[id]
	out := make([]Neighbor, 0, len(incident))
	var e *Edge
	for _, e = range incident {
		out = append(out, Neighbor{
			ID:       e.Other(id),
			Distance: e.Distance,
			Coins:    e.Coins,
			EdgeID:   e.ID,
		})
	}

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id, in the same order as Neighbors.
// Complexity: O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(nbs))
	for i, nb := range nbs {
		ids[i] = nb.ID
	}

	return ids, nil
}

// Degree returns the number of roads incident to id.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if !g.HasVertex(id) {
		return 0, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}
