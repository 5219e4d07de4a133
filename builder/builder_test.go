// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coinpath/builder"
	"github.com/katalvlaran/coinpath/core"
)

func TestSampleGraph(t *testing.T) {
	g, err := builder.SampleGraph()
	require.NoError(t, err)

	assert.Equal(t, 9, g.VertexCount())
	assert.Equal(t, 16, g.EdgeCount())

	e, err := g.Edge("E", "A")
	require.NoError(t, err)
	assert.Equal(t, int64(280), e.Distance)
	assert.Equal(t, int64(4), e.Coins)

	v, err := g.Vertex("I")
	require.NoError(t, err)
	assert.Equal(t, int64(9), v.Heuristic)
	assert.Equal(t, 500.0, v.X)
	assert.Equal(t, 500.0, v.Y)

	assert.False(t, g.HasEdge("A", "I"))
}

func TestTradeoffGraph(t *testing.T) {
	g, err := builder.TradeoffGraph()
	require.NoError(t, err)

	cases := []struct {
		a, b        string
		dist, coins int64
	}{
		{"A", "B", 200, 5},
		{"A", "D", 200, 3},
		{"E", "I", 280, 9},
	}
	for _, tc := range cases {
		e, err := g.Edge(tc.a, tc.b)
		require.NoError(t, err, "%s-%s", tc.a, tc.b)
		assert.Equal(t, tc.dist, e.Distance, "%s-%s", tc.a, tc.b)
		assert.Equal(t, tc.coins, e.Coins, "%s-%s", tc.a, tc.b)
	}
}

func TestSample_ByName(t *testing.T) {
	g, err := builder.Sample("tradeoff")
	require.NoError(t, err)
	assert.Equal(t, 16, g.EdgeCount())

	_, err = builder.Sample("downtown")
	assert.ErrorIs(t, err, builder.ErrUnknownCityMap)

	m, err := builder.ParseCityMap("sample")
	require.NoError(t, err)
	assert.Equal(t, "sample", m.String())
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 7, g.EdgeCount())
	assert.False(t, g.HasEdge("0,0", "1,1"))

	e, err := g.Edge("0,1", "1,1")
	require.NoError(t, err)
	assert.Equal(t, int64(200), e.Distance)
	assert.Equal(t, int64(2), e.Coins)

	v, err := g.Vertex("1,2")
	require.NoError(t, err)
	assert.Equal(t, 400.0, v.X)
	assert.Equal(t, 200.0, v.Y)
}

func TestGrid_Diagonals(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{
			builder.WithCostFn(builder.ConstCost(10, 0)),
			builder.WithDiagonals(builder.ConstCost(14, 3)),
		},
		builder.Grid(2, 3),
	)
	require.NoError(t, err)
	assert.Equal(t, 11, g.EdgeCount())

	e, err := g.Edge("0,1", "1,0")
	require.NoError(t, err)
	assert.Equal(t, int64(14), e.Distance)
	assert.Equal(t, int64(3), e.Coins)

	e, err = g.Edge("0,0", "0,1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), e.Distance)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) []core.Edge {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithCostFn(builder.UniformCost(50, 5))},
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)

		return g.Edges()
	}

	a, b := build(7), build(7)
	assert.Equal(t, a, b)
	for _, e := range a {
		assert.GreaterOrEqual(t, e.Distance, int64(1))
		assert.LessOrEqual(t, e.Distance, int64(50))
		assert.GreaterOrEqual(t, e.Coins, int64(0))
		assert.LessOrEqual(t, e.Coins, int64(5))
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	full, err := builder.BuildGraph(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, full.EdgeCount())

	empty, err := builder.BuildGraph(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Equal(t, 5, empty.VertexCount())
	assert.Zero(t, empty.EdgeCount())
}

func TestBuilder_Errors(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		want error
	}{
		{"grid zero rows", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"random zero n", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"random bad p", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"random no rng", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"unknown map", builder.Cities(builder.CityMap(42)), builder.ErrUnknownCityMap},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.cons)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuilder_Compose(t *testing.T) {
	// Two constructors over one graph collide on vertex IDs.
	_, err := builder.BuildGraph(nil, builder.Cities(builder.CityMapSample), builder.Cities(builder.CityMapSample))
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithCostFn(nil) })
	assert.Panics(t, func() { builder.WithSpacing(0) })
	assert.Panics(t, func() { builder.ConstCost(-1, 0) })
	assert.Panics(t, func() { builder.UniformCost(0, 1) })
}
