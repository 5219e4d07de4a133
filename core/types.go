// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types of a
// coin-constrained road network, and provides thread-safe primitives for
// building and querying it.
//
// This file declares Vertex, Edge, Neighbor, Graph, VertexOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID     - vertex ID is the empty string.
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrDuplicateVertex   - vertex ID is already registered.
//	ErrDuplicateEdge     - the two vertices are already connected.
//	ErrEdgeNotFound      - no edge joins the requested pair.
//	ErrLoopNotAllowed    - attempt to connect a vertex to itself.
//	ErrNegativeCost      - distance or coin cost below zero.
//	ErrNegativeHeuristic - heuristic estimate below zero.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates AddVertex was called with an ID already in the graph.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrDuplicateEdge indicates Connect was called for a pair that is already connected.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrEdgeNotFound indicates no edge joins the requested pair of vertices.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNegativeCost indicates a negative distance or coin cost on Connect.
	ErrNegativeCost = errors.New("core: negative edge cost")

	// ErrNegativeHeuristic indicates a negative heuristic estimate on AddVertex.
	ErrNegativeHeuristic = errors.New("core: negative heuristic")
)

// Vertex represents a city (node) in the graph.
//
// Heuristic is the stored estimate of remaining distance to the goal the graph
// was laid out for. It is only meaningful for that goal; searches against other
// goals should inject their own heuristic. X and Y are optional layout
// coordinates carried for renderers.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Heuristic is the stored remaining-distance estimate (≥ 0).
	Heuristic int64

	// X, Y are layout coordinates; zero unless set with WithPosition.
	X, Y float64
}

// Edge represents a symmetric road between two vertices.
//
// From/To record the orientation used at Connect time only; the edge is
// traversable both ways with identical costs.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the first endpoint passed to Connect.
	From string

	// To is the second endpoint passed to Connect.
	To string

	// Distance is the primary cost (the quantity searches minimise).
	Distance int64

	// Coins is the secondary cost (the quantity bounded by a budget).
	Coins int64
}

// Other returns the endpoint opposite to id.
// If id is not an endpoint, Other returns From.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Neighbor is one hop out of a vertex: the adjacent vertex and the edge costs.
type Neighbor struct {
	ID       string // adjacent vertex
	Distance int64  // primary cost of the hop
	Coins    int64  // secondary cost of the hop
	EdgeID   string // edge that realises the hop
}

// VertexOption configures optional properties of a vertex at AddVertex time.
type VertexOption func(*Vertex)

// WithPosition records layout coordinates for a vertex.
func WithPosition(x, y float64) VertexOption {
	return func(v *Vertex) {
		v.X = x
		v.Y = y
	}
}

// pairKey is the canonical (sorted) unordered pair of endpoint IDs.
type pairKey struct {
	lo, hi string
}

func makePair(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// Graph is the in-memory, write-once/read-many road network.
//
// There are no removal operations. muVert protects the vertex catalog;
// muEdgeAdj protects edges, the pair index, and adjacency. Lock order is
// always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices and vertexOrder
	muEdgeAdj sync.RWMutex // guards edges, edgeOrder, pairs and adjacency

	// Storage
	nextEdgeID  uint64             // edge ID generator, guarded by muEdgeAdj
	vertices    map[string]*Vertex // vertex ID → Vertex
	vertexOrder []string           // vertex IDs in insertion order
	edges       map[string]*Edge   // edge ID → Edge
	edgeOrder   []*Edge            // edges in insertion order
	pairs       map[pairKey]*Edge  // unordered pair → Edge

	// adjacency[v] lists edges incident to v in insertion order.
	adjacency map[string][]*Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		pairs:     make(map[pairKey]*Edge),
		adjacency: make(map[string][]*Edge),
	}
}
