// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: Connect/HasEdge/Edge/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock, after endpoint checks under muVert.

package core

import (
	"fmt"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// Connect joins a and b with a symmetric road of the given distance and coin cost,
// and returns the new edge ID.
//
// Steps:
//  1. Validate IDs, loop, and non-negative costs.
//  2. Under muVert read lock, require both endpoints (ErrVertexNotFound).
//  3. Under muEdgeAdj write lock, reject an existing pair (ErrDuplicateEdge).
//  4. Generate the edge ID, store the edge, append it to both adjacency buckets.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrNegativeCost,
//     ErrVertexNotFound, ErrDuplicateEdge.
//
// Complexity: O(1) amortized.
func (g *Graph) Connect(a, b string, distance, coins int64) (string, error) {
	if a == "" || b == "" {
		return "", ErrEmptyVertexID
	}
	if a == b {
		return "", fmt.Errorf("%w: %s", ErrLoopNotAllowed, a)
	}
	if distance < 0 || coins < 0 {
		return "", fmt.Errorf("%w: %s-%s distance=%d coins=%d", ErrNegativeCost, a, b, distance, coins)
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[a]; !ok {
		return "", fmt.Errorf("%w: %s", ErrVertexNotFound, a)
	}
	if _, ok := g.vertices[b]; !ok {
		return "", fmt.Errorf("%w: %s", ErrVertexNotFound, b)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	key := makePair(a, b)
	if _, exists := g.pairs[key]; exists {
		return "", fmt.Errorf("%w: %s-%s", ErrDuplicateEdge, a, b)
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: a, To: b, Distance: distance, Coins: coins}

	g.edges[eid] = e
	g.edgeOrder = append(g.edgeOrder, e)
	g.pairs[key] = e
	g.adjacency[a] = append(g.adjacency[a], e)
	g.adjacency[b] = append(g.adjacency[b], e)

	return eid, nil
}

// HasEdge reports whether a and b are directly connected, in either orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.pairs[makePair(a, b)]

	return ok
}

// Edge returns a copy of the edge joining a and b.
//
// Errors:
//   - ErrEdgeNotFound if the pair is not connected (including unknown vertices).
//
// Complexity: O(1).
func (g *Graph) Edge(a, b string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.pairs[makePair(a, b)]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, a, b)
	}

	return *e, nil
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, len(g.edgeOrder))
	for i, e := range g.edgeOrder {
		out[i] = *e
	}

	return out
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next "e<N>" identifier.
// Caller must hold muEdgeAdj write lock.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}
