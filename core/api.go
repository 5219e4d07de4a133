// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries and cloning on top of the core types.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a read-only snapshot of catalog sizes and cost extrema.
type GraphStats struct {
	VertexCount   int   // number of vertices
	EdgeCount     int   // number of edges
	TotalDistance int64 // sum of edge distances
	TotalCoins    int64 // sum of edge coin costs
	MaxDistance   int64 // largest single-edge distance
	MaxCoins      int64 // largest single-edge coin cost
	Isolated      int   // vertices with no incident edge
}

// Stats produces a deterministic snapshot of counts and cost extrema.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot vertex count.
//   - Stage 2: Acquire muEdgeAdj.RLock, scan edges and adjacency buckets.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	stats := GraphStats{VertexCount: len(g.vertices)}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	stats.EdgeCount = len(g.edges)
	var e *Edge
	for _, e = range g.edgeOrder {
		stats.TotalDistance += e.Distance
		stats.TotalCoins += e.Coins
		if e.Distance > stats.MaxDistance {
			stats.MaxDistance = e.Distance
		}
		if e.Coins > stats.MaxCoins {
			stats.MaxCoins = e.Coins
		}
	}
	for _, id := range g.vertexOrder {
		if len(g.adjacency[id]) == 0 {
			stats.Isolated++
		}
	}

	return &stats
}

// Clone returns a deep copy of the graph: vertices, edges (same IDs and
// insertion order), and adjacency. The clone continues edge IDs after the
// source's last ID.
//
// Complexity: O(V + E). Concurrency: read locks only on the source.
func (g *Graph) Clone() *Graph {
	out := NewGraph()

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	for _, id := range g.vertexOrder {
		v := *g.vertices[id]
		out.vertices[id] = &v
		out.vertexOrder = append(out.vertexOrder, id)
		out.adjacency[id] = nil
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out.nextEdgeID = g.nextEdgeID
	for _, e := range g.edgeOrder {
		ne := *e
		out.edges[ne.ID] = &ne
		out.edgeOrder = append(out.edgeOrder, &ne)
		out.pairs[makePair(ne.From, ne.To)] = &ne
		out.adjacency[ne.From] = append(out.adjacency[ne.From], &ne)
		out.adjacency[ne.To] = append(out.adjacency[ne.To], &ne)
	}

	return out
}
