// SPDX-License-Identifier: MIT
// Package constrained finds the shortest-distance route between two vertices
// of a core.Graph whose total coin cost stays within a budget.
//
// Overview:
//
//   - Every edge has two non-negative costs: Distance (minimised) and Coins
//     (bounded by the budget). Plain Dijkstra on Distance cannot honour the
//     budget, because the cheapest-distance prefix to a vertex may spend coins
//     a later edge needs.
//   - FindPath is a label-setting A*: a search state (label) is a vertex
//     together with the coins and distance spent to reach it. Labels are popped
//     by f = distance + heuristic, ties broken by push order.
//   - The first popped label at the goal is optimal when the heuristic is
//     admissible and consistent with respect to Distance.
//
// Pruning:
//
//   - PrunePareto (default): a popped label is discarded when a settled label
//     at the same vertex has coins ≤ and distance ≤. Pushes dominated by a
//     settled label are skipped as well.
//   - PruneExact: a popped label is discarded only when a settled label has the
//     same vertex, the same coins and a distance ≤. Explores more, but mirrors
//     the plain (vertex, coins) state-space formulation.
//
// Both modes return the same distance for every query.
//
// Heuristics:
//
//	Heuristics are injected per query, because one estimate table is only valid
//	for the goal it was drawn for.
//
//	  - StoredHeuristic(g)    values stored on the vertices (the default).
//	  - ZeroHeuristic         label-setting Dijkstra, always admissible.
//	  - ExactHeuristic(g, t)  true remaining distances to t via reverse Dijkstra.
//	  - TableHeuristic(m)     caller-supplied map.
//
//	A vertex estimating Infinite is never enqueued.
//
// Infeasibility:
//
//	A well-formed query without a fitting path returns *InfeasibleError,
//	matched by errors.Is(err, ErrNoFeasiblePath). It reports whether the goal is
//	reachable at all and the smallest budget that would reach it. The Result
//	returned alongside still carries the trace of the exhausted search.
//
// Trace:
//
//	Result.Trace lists the vertices in first-pop order and the relaxations that
//	were pushed. A Finder additionally keeps the trace of its last call.
//
// Complexity:
//
//   - Labels: O(V·(B+1)) for budget B; each frontier operation O(log L).
//   - Memory: O(L) for the label arena and frontier.
//
// Concurrency:
//
//	FindPath holds no shared state and only reads the graph; concurrent calls
//	on one graph are safe. A Finder serialises its own calls.
package constrained
