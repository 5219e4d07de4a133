// SPDX-License-Identifier: MIT
package batch_test

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coinpath/batch"
	"github.com/katalvlaran/coinpath/builder"
	"github.com/katalvlaran/coinpath/constrained"
	"github.com/katalvlaran/coinpath/core"
	"github.com/katalvlaran/coinpath/scenario"
)

func gridQueries(rows, cols int) []scenario.Query {
	var qs []scenario.Query
	goal := builder.GridID(rows-1, cols-1)
	for budget := int64(0); budget <= 30; budget += 3 {
		for c := 0; c < cols-1; c++ {
			qs = append(qs, scenario.Query{
				Source:    builder.GridID(0, c),
				Goal:      goal,
				Budget:    budget,
				Heuristic: "exact",
			})
		}
	}

	return qs
}

func seededGrid(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{
			builder.WithSeed(11),
			builder.WithCostFn(builder.UniformCost(40, 4)),
			builder.WithDiagonals(builder.UniformCost(60, 6)),
		},
		builder.Grid(4, 5),
	)
	require.NoError(t, err)

	return g
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	g := seededGrid(t)
	qs := gridQueries(4, 5)

	seq, err := batch.Run(context.Background(), g, qs)
	require.NoError(t, err)
	par, err := batch.Run(context.Background(), g, qs, batch.WithParallel(4))
	require.NoError(t, err)

	require.Len(t, par, len(qs))
	for i := range qs {
		name := fmt.Sprintf("query %d", i)
		assert.Equal(t, i, par[i].Index, name)
		assert.Equal(t, qs[i], par[i].Query, name)
		assert.Equal(t, seq[i].Err, par[i].Err, name)
		if seq[i].Result.Found() {
			assert.Equal(t, seq[i].Result.Path, par[i].Result.Path, name)
			assert.Equal(t, seq[i].Result.Distance, par[i].Result.Distance, name)
			assert.Equal(t, seq[i].Result.Trace, par[i].Result.Trace, name)
		}
	}
}

func TestRun_PerQueryStrategies(t *testing.T) {
	g, err := builder.TradeoffGraph()
	require.NoError(t, err)

	qs := []scenario.Query{
		{Source: "A", Goal: "I", Budget: 17},
		{Source: "A", Goal: "I", Budget: 17, Heuristic: "zero", Pruning: "exact"},
		{Source: "A", Goal: "I", Budget: 15},
		{Source: "A", Goal: "Z", Budget: 15},
		{Source: "A", Goal: "I", Budget: 17, Heuristic: "psychic"},
	}
	out, err := batch.Run(context.Background(), g, qs, batch.WithParallel(2))
	require.NoError(t, err)

	assert.Equal(t, int64(680), out[0].Result.Distance)
	assert.Equal(t, int64(680), out[1].Result.Distance)
	assert.ErrorIs(t, out[2].Err, constrained.ErrNoFeasiblePath)
	assert.ErrorIs(t, out[3].Err, core.ErrVertexNotFound)
	assert.ErrorIs(t, out[4].Err, constrained.ErrUnknownStrategy)

	assert.Equal(t, batch.Summary{Total: 5, Found: 2, Infeasible: 1, Failed: 2}, batch.Summarize(out))
}

func TestRun_Cancelled(t *testing.T) {
	g := seededGrid(t)
	qs := gridQueries(4, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := batch.Run(ctx, g, qs, batch.WithParallel(3))
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, out, len(qs))
	for i, o := range out {
		assert.ErrorIs(t, o.Err, context.Canceled, strconv.Itoa(i))
	}
}

func TestRun_Errors(t *testing.T) {
	_, err := batch.Run(context.Background(), nil, nil)
	assert.ErrorIs(t, err, batch.ErrNilGraph)

	assert.Panics(t, func() { batch.WithParallel(0) })
	assert.Panics(t, func() { batch.WithLogger(nil) })
}
