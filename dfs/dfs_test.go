// SPDX-License-Identifier: MIT
package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coinpath/core"
	"github.com/katalvlaran/coinpath/dfs"
)

// triangle: A-B and B-C cost 200/2 each, the direct A-C road 280/5.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id, 0))
	}
	for _, r := range []struct {
		a, b        string
		dist, coins int64
	}{{"A", "B", 200, 2}, {"B", "C", 200, 2}, {"A", "C", 280, 5}} {
		_, err := g.Connect(r.a, r.b, r.dist, r.coins)
		require.NoError(t, err)
	}

	return g
}

func TestRoutes(t *testing.T) {
	routes, err := dfs.Routes(triangle(t), "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []dfs.Route{
		{Path: []string{"A", "C"}, Distance: 280, Coins: 5},
		{Path: []string{"A", "B", "C"}, Distance: 400, Coins: 4},
	}, routes)
}

func TestRoutes_Caps(t *testing.T) {
	g := triangle(t)

	routes, err := dfs.Routes(g, "A", "C", dfs.WithMaxCoins(4))
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, []string{"A", "B", "C"}, routes[0].Path)

	routes, err = dfs.Routes(g, "A", "C", dfs.WithMaxRoads(1))
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, []string{"A", "C"}, routes[0].Path)

	routes, err = dfs.Routes(g, "A", "C", dfs.WithMaxCoins(3))
	require.NoError(t, err)
	assert.Empty(t, routes)

	// Walk order follows road insertion, so A-B is tried first.
	routes, err = dfs.Routes(g, "A", "C", dfs.WithLimit(1))
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, []string{"A", "B", "C"}, routes[0].Path)
}

func TestWalk_VisitError(t *testing.T) {
	boom := errors.New("boom")
	err := dfs.Walk(triangle(t), "A", "C", func(dfs.Route) error { return boom })
	assert.ErrorIs(t, err, boom)

	n := 0
	err = dfs.Walk(triangle(t), "A", "C", func(dfs.Route) error {
		n++
		return dfs.ErrStop
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWalk_Errors(t *testing.T) {
	noop := func(dfs.Route) error { return nil }

	assert.ErrorIs(t, dfs.Walk(nil, "A", "C", noop), dfs.ErrGraphNil)
	assert.ErrorIs(t, dfs.Walk(triangle(t), "A", "Z", noop), dfs.ErrVertexNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, dfs.Walk(triangle(t), "A", "C", noop, dfs.WithContext(ctx)), context.Canceled)

	assert.Panics(t, func() { dfs.WithMaxCoins(-1) })
	assert.Panics(t, func() { dfs.WithMaxRoads(-1) })
	assert.Panics(t, func() { dfs.WithLimit(-1) })
}
