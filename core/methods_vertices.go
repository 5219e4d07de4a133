// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert -> muEdgeAdj).
package core

import "fmt"

// AddVertex inserts a new vertex with the given stored heuristic.
//
// Implementation:
//   - Stage 1: Validate non-empty ID and non-negative heuristic.
//   - Stage 2: Under muVert write lock, reject an existing ID with ErrDuplicateVertex.
//   - Stage 3: Apply options, register the vertex, bootstrap its adjacency bucket.
//
// Errors:
//   - ErrEmptyVertexID, ErrNegativeHeuristic, ErrDuplicateVertex.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(id string, heuristic int64, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if heuristic < 0 {
		return fmt.Errorf("%w: %s h=%d", ErrNegativeHeuristic, id, heuristic)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateVertex, id)
	}

	v := &Vertex{ID: id, Heuristic: heuristic}
	var opt VertexOption
	for _, opt = range opts {
		opt(v)
	}
	g.vertices[id] = v
	g.vertexOrder = append(g.vertexOrder, id)

	// Bootstrap adjacency so Neighbors on an isolated vertex yields an empty slice.
	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex registered under id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	return *v, nil
}

// Heuristic returns the stored heuristic of id.
// Complexity: O(1).
func (g *Graph) Heuristic(id string) (int64, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return 0, err
	}

	return v.Heuristic, nil
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a fresh copy.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
