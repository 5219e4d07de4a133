// SPDX-License-Identifier: MIT
package constrained_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coinpath/constrained"
	"github.com/katalvlaran/coinpath/core"
)

func TestFinder_TraceFollowsLastCall(t *testing.T) {
	g := buildTriangle(t)
	f := constrained.NewFinder(constrained.WithHeuristic(constrained.ZeroHeuristic))

	_, err := f.Find(g, "A", "C", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, f.Trace().Visited)

	_, err = f.Find(g, "A", "C", 1)
	require.ErrorIs(t, err, constrained.ErrNoFeasiblePath)
	assert.Equal(t, []string{"A"}, f.Trace().Visited)

	_, err = f.Find(g, "A", "A", 1)
	require.ErrorIs(t, err, constrained.ErrTrivialQuery)
	assert.Empty(t, f.Trace().Visited)
	assert.Empty(t, f.Trace().Relaxed)
}

func TestFinder_TraceIsCopy(t *testing.T) {
	g := buildTriangle(t)
	f := constrained.NewFinder()

	res, err := f.Find(g, "A", "C", 5)
	require.NoError(t, err)

	tr := f.Trace()
	tr.Visited[0] = "mutated"
	assert.Equal(t, "A", f.Trace().Visited[0])
	assert.Equal(t, "A", res.Trace.Visited[0])
}

func TestFinder_PerCallOptionsOverride(t *testing.T) {
	g := buildTriangle(t)
	f := constrained.NewFinder(constrained.WithMaxExpansions(1))

	_, err := f.Find(g, "A", "C", 4)
	assert.ErrorIs(t, err, constrained.ErrExpansionLimit)

	res, err := f.Find(g, "A", "C", 4, constrained.WithMaxExpansions(0))
	require.NoError(t, err)
	assert.Equal(t, int64(400), res.Distance)
}

func TestEvaluate(t *testing.T) {
	g := buildTriangle(t)

	d, c, err := constrained.Evaluate(g, []string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, int64(400), d)
	assert.Equal(t, int64(4), c)

	d, c, err = constrained.Evaluate(g, []string{"B"})
	require.NoError(t, err)
	assert.Zero(t, d)
	assert.Zero(t, c)

	cases := []struct {
		name string
		g    *core.Graph
		path []string
		want error
	}{
		{"nil graph", nil, []string{"A"}, constrained.ErrNilGraph},
		{"empty", g, nil, constrained.ErrEmptyPath},
		{"unknown vertex", g, []string{"A", "Z"}, core.ErrVertexNotFound},
		{"not adjacent", g, []string{"A", "D"}, constrained.ErrNotAdjacent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := constrained.Evaluate(tc.g, tc.path)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseHeuristic(t *testing.T) {
	g := buildTriangle(t)

	for _, name := range []string{"", "stored", "zero", "exact"} {
		h, err := constrained.ParseHeuristic(name, g, "C")
		require.NoError(t, err, name)
		assert.Zero(t, h("C"), name)
	}

	exact, err := constrained.ParseHeuristic("exact", g, "C")
	require.NoError(t, err)
	assert.Equal(t, int64(280), exact("A"))
	assert.Equal(t, constrained.Infinite, exact("D"))

	_, err = constrained.ParseHeuristic("euclid", g, "C")
	assert.ErrorIs(t, err, constrained.ErrUnknownStrategy)

	_, err = constrained.ParseHeuristic("exact", g, "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestParsePruning(t *testing.T) {
	p, err := constrained.ParsePruning("exact")
	require.NoError(t, err)
	assert.Equal(t, constrained.PruneExact, p)
	assert.Equal(t, "exact", p.String())

	p, err = constrained.ParsePruning("")
	require.NoError(t, err)
	assert.Equal(t, constrained.PrunePareto, p)

	_, err = constrained.ParsePruning("greedy")
	assert.ErrorIs(t, err, constrained.ErrUnknownStrategy)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { constrained.WithHeuristic(nil) })
	assert.Panics(t, func() { constrained.WithPruning(constrained.Pruning(9)) })
	assert.Panics(t, func() { constrained.WithMaxExpansions(-1) })
	assert.Panics(t, func() { constrained.WithLogger(nil) })
}

func TestNewReport(t *testing.T) {
	g := buildTriangle(t)

	res, err := constrained.FindPath(g, "A", "C", 4)
	require.NoError(t, err)
	rep := constrained.NewReport(res, err)
	assert.Equal(t, []string{"A", "B", "C"}, rep.Path)
	assert.Equal(t, [][2]string{{"A", "B"}, {"B", "C"}}, rep.Relaxed)
	assert.Empty(t, rep.Error)
	assert.Nil(t, rep.Reachable)

	res, err = constrained.FindPath(g, "A", "C", 1)
	require.Error(t, err)
	rep = constrained.NewReport(res, err)
	assert.Empty(t, rep.Path)
	assert.Equal(t, []string{"A"}, rep.Visited)
	require.NotNil(t, rep.Reachable)
	assert.True(t, *rep.Reachable)
	require.NotNil(t, rep.MinCoins)
	assert.Equal(t, int64(4), *rep.MinCoins)

	res, err = constrained.FindPath(g, "A", "D", 10)
	require.Error(t, err)
	rep = constrained.NewReport(res, err)
	require.NotNil(t, rep.Reachable)
	assert.False(t, *rep.Reachable)
	assert.Nil(t, rep.MinCoins)
}
