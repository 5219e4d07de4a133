// SPDX-License-Identifier: MIT
package constrained_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coinpath/builder"
	"github.com/katalvlaran/coinpath/constrained"
	"github.com/katalvlaran/coinpath/core"
	"github.com/katalvlaran/coinpath/dfs"
)

const (
	oracleVertices = 7
	oracleProb     = 0.4
	oracleSeeds    = 25
	oracleMaxCoins = 5
	oracleBudgets  = 14
)

// randomGraph builds a seeded random road network for property checks.
func randomGraph(t *testing.T, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithCostFn(builder.UniformCost(50, oracleMaxCoins)),
		},
		builder.RandomSparse(oracleVertices, oracleProb),
	)
	require.NoError(t, err)

	return g
}

// bruteForce enumerates every simple route within budget and returns the
// shortest distance. With non-negative costs an optimal path can always be
// taken simple.
func bruteForce(t *testing.T, g *core.Graph, source, goal string, budget int64) (int64, bool) {
	t.Helper()
	routes, err := dfs.Routes(g, source, goal, dfs.WithMaxCoins(budget))
	require.NoError(t, err)
	if len(routes) == 0 {
		return 0, false
	}

	return routes[0].Distance, true
}

// TestFindPath_MatchesBruteForce checks optimality, feasibility and the
// agreement of all pruning and heuristic combinations on random graphs.
func TestFindPath_MatchesBruteForce(t *testing.T) {
	source, goal := "0", strconv.Itoa(oracleVertices-1)

	for seed := int64(1); seed <= oracleSeeds; seed++ {
		g := randomGraph(t, seed)
		exact, err := constrained.ExactHeuristic(g, goal)
		require.NoError(t, err)

		variants := []struct {
			name string
			opts []constrained.Option
		}{
			{"pareto/zero", []constrained.Option{constrained.WithHeuristic(constrained.ZeroHeuristic)}},
			{"exact/zero", []constrained.Option{
				constrained.WithHeuristic(constrained.ZeroHeuristic),
				constrained.WithPruning(constrained.PruneExact),
			}},
			{"pareto/exact-h", []constrained.Option{constrained.WithHeuristic(exact)}},
			{"exact/exact-h", []constrained.Option{
				constrained.WithHeuristic(exact),
				constrained.WithPruning(constrained.PruneExact),
			}},
		}

		for budget := int64(0); budget < oracleBudgets; budget++ {
			want, feasible := bruteForce(t, g, source, goal, budget)

			for _, v := range variants {
				name := fmt.Sprintf("seed=%d/budget=%d/%s", seed, budget, v.name)
				res, err := constrained.FindPath(g, source, goal, budget, v.opts...)
				if !feasible {
					assert.ErrorIs(t, err, constrained.ErrNoFeasiblePath, name)
					continue
				}
				require.NoError(t, err, name)
				assert.Equal(t, want, res.Distance, name)
				assert.LessOrEqual(t, res.Coins, budget, name)
				assert.Equal(t, source, res.Path[0], name)
				assert.Equal(t, goal, res.Path[len(res.Path)-1], name)

				d, c, err := constrained.Evaluate(g, res.Path)
				require.NoError(t, err, name)
				assert.Equal(t, res.Distance, d, name)
				assert.Equal(t, res.Coins, c, name)
			}
		}
	}
}

// TestFindPath_BudgetMonotonic checks that raising the budget never makes a
// route longer and never makes a feasible query infeasible.
func TestFindPath_BudgetMonotonic(t *testing.T) {
	source, goal := "0", strconv.Itoa(oracleVertices-1)

	for seed := int64(1); seed <= oracleSeeds; seed++ {
		g := randomGraph(t, seed)
		var (
			prev        int64
			wasFeasible bool
		)
		for budget := int64(0); budget < oracleBudgets; budget++ {
			res, err := constrained.FindPath(g, source, goal, budget)
			if err != nil {
				require.ErrorIs(t, err, constrained.ErrNoFeasiblePath)
				assert.False(t, wasFeasible, "seed=%d budget=%d lost feasibility", seed, budget)
				continue
			}
			if wasFeasible {
				assert.LessOrEqual(t, res.Distance, prev, "seed=%d budget=%d", seed, budget)
			}
			prev, wasFeasible = res.Distance, true
		}
	}
}

// TestFindPath_MinCoinsIsTight checks that the diagnosed budget is exactly
// the smallest feasible one.
func TestFindPath_MinCoinsIsTight(t *testing.T) {
	source, goal := "0", strconv.Itoa(oracleVertices-1)

	for seed := int64(1); seed <= oracleSeeds; seed++ {
		g := randomGraph(t, seed)
		_, err := constrained.FindPath(g, source, goal, 0)
		var ie *constrained.InfeasibleError
		if err == nil || !assert.ErrorAs(t, err, &ie) || !ie.Reachable {
			continue
		}

		_, err = constrained.FindPath(g, source, goal, ie.MinCoins)
		assert.NoError(t, err, "seed=%d", seed)
		_, err = constrained.FindPath(g, source, goal, ie.MinCoins-1)
		assert.ErrorIs(t, err, constrained.ErrNoFeasiblePath, "seed=%d", seed)
	}
}
