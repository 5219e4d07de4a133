// SPDX-License-Identifier: MIT
// Package dijkstra provides single-metric Dijkstra shortest paths over the
// two-cost road network in package core.
//
// Overview:
//
//   - Dijkstra computes the minimum cost from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, relaxing either the edge
//     Distance or the edge Coins (WithMetric).
//   - It relies on a min-heap (priority queue) with lazy decrease-key.
//
// When to use:
//
//   - As an exact heuristic source for budgeted search: distances computed
//     from the goal are the true remaining distances, hence admissible and
//     consistent for that goal.
//   - To find the smallest budget with which a goal is reachable at all
//     (Metric Coins), e.g. to explain why a budgeted query is infeasible.
//
// API reference:
//
//	func Dijkstra(
//	    g *core.Graph,
//	    opts ...Option,
//	) (dist map[string]int64, prev map[string]string, err error)
//
//	  - opts:    Source(string) (required), WithMetric(Metric),
//	             WithReturnPath(), WithMaxDistance(int64).
//	  - dist:    map[v] = minimal cost from Source to v, or Unreachable.
//	  - prev:    map[v] = predecessor of v on one cheapest path; nil unless WithReturnPath.
//	  - err:     ErrEmptySource, ErrNilGraph, ErrVertexNotFound, or nil.
//
// Thread safety:
//
//   - core.Graph is append-only and internally locked, so concurrent Dijkstra
//     calls over the same graph are safe.
package dijkstra
