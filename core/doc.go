// SPDX-License-Identifier: MIT
// Package core provides a thread-safe, write-once/read-many in-memory road
// network where every edge carries two independent, non-negative integer
// costs: a Distance (the primary metric searches minimise) and a Coins cost
// (the secondary metric bounded by a budget).
//
// The Graph G = (V,E) has a deliberately narrow shape:
//
//   - Undirected: Connect(a, b, d, c) makes b a neighbour of a and a a
//     neighbour of b with identical costs.
//   - Simple: at most one edge per unordered pair; no self-loops.
//   - Append-only: there are no removal operations, so a built graph can be
//     shared by any number of concurrent searches.
//   - Deterministic: Vertices(), Edges() and Neighbors() follow insertion
//     order, which makes search traces reproducible.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); lock order is always muVert -> muEdgeAdj.
//
// Each Vertex may carry a stored Heuristic (estimated remaining distance to
// the goal the map was drawn for) and optional X/Y layout coordinates.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, h int64, opts ...VertexOption) error  // O(1)
//	HasVertex(id string) bool                                   // O(1)
//	Vertex(id string) (Vertex, error)                           // O(1)
//	Heuristic(id string) (int64, error)                         // O(1)
//
//	// Edge lifecycle
//	Connect(a, b string, distance, coins int64) (edgeID string, err error) // O(1)
//	HasEdge(a, b string) bool                                               // O(1)
//	Edge(a, b string) (Edge, error)                                         // O(1)
//
//	// Query
//	Neighbors(id string) ([]Neighbor, error)  // O(d), insertion order
//	NeighborIDs(id string) ([]string, error)  // O(d)
//	Degree(id string) (int, error)            // O(1)
//	Vertices() []string                       // O(V)
//	Edges() []Edge                            // O(E)
//	VertexCount(), EdgeCount() int            // O(1)
//	Stats() *GraphStats                       // O(V+E)
//	Clone() *Graph                            // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID     – zero-length vertex ID
//	ErrVertexNotFound    – missing vertex (the "unknown vertex" class)
//	ErrDuplicateVertex   – AddVertex on an existing ID
//	ErrDuplicateEdge     – Connect on an already connected pair
//	ErrEdgeNotFound      – Edge on an unconnected pair
//	ErrLoopNotAllowed    – Connect(v, v, ...)
//	ErrNegativeCost      – negative distance or coins
//	ErrNegativeHeuristic – negative stored heuristic
//
// Errors returned by methods wrap these sentinels with the offending IDs;
// branch with errors.Is.
package core
