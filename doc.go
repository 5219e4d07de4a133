// Package coinpath finds the shortest route between two cities when every
// road costs both distance and coins and the coins are capped by a budget.
//
// Distance is the primary cost and is minimised. Coins are the secondary
// cost and only have to stay within the budget. A plain shortest-path
// search cannot answer this: the shortest road to a city may spend coins a
// later leg needs, so the search keeps several (coins, distance) labels per
// city.
//
// Layout:
//
//	core/        – thread-safe road network: cities, two-cost roads, adjacency
//	dijkstra/    – single-metric shortest paths (distance or coins)
//	constrained/ – budgeted A* search, heuristics, traces, route evaluation
//	bfs/         – hop counts and connected components
//	dfs/         – simple-route enumeration
//	builder/     – deterministic map construction (city maps, grids, random)
//	scenario/    – YAML/JSON maps with queries, plus bundled scenarios
//	batch/       – concurrent query execution
//	cmd/coinpath – CLI: solve, routes, batch, serve, sample
//
// Quick example, the bundled 3×3 map:
//
//	A───B───C
//	│ ╲   ╱ │
//	D───E───F
//	│ ╱   ╲ │
//	G───H───I
//
// With 8 coins the best A→I route takes both diagonals (A→E→I, 560);
// with 7 coins no route exists, since every A→I route costs at least 8.
package coinpath
