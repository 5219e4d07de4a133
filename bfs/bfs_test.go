// SPDX-License-Identifier: MIT
package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coinpath/bfs"
	"github.com/katalvlaran/coinpath/builder"
	"github.com/katalvlaran/coinpath/core"
)

func sample(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.SampleGraph()
	require.NoError(t, err)

	return g
}

func TestBFS_Hops(t *testing.T) {
	res, err := bfs.BFS(sample(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "E", "C", "G", "F", "H", "I"}, res.Order)
	assert.Equal(t, 2, res.Hops["I"])
	path, err := res.PathTo("I")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "E", "I"}, path)
}

func TestBFS_MaxToll(t *testing.T) {
	// Diagonals cost 4 coins, so I is four orthogonal roads from A.
	res, err := bfs.BFS(sample(t), "A", bfs.WithMaxToll(2))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Hops["I"])

	res, err = bfs.BFS(sample(t), "A", bfs.WithMaxToll(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	_, err = res.PathTo("I")
	assert.Error(t, err)
}

func TestBFS_RoadFilter(t *testing.T) {
	var seen []string
	avoidE := bfs.WithRoadFilter(func(from string, nb core.Neighbor) bool {
		seen = append(seen, from+"-"+nb.ID)
		return nb.ID != "E"
	})
	res, err := bfs.BFS(sample(t), "A", avoidE)
	require.NoError(t, err)

	assert.False(t, res.Reached("E"))
	assert.Equal(t, 4, res.Hops["I"])
	assert.Len(t, res.Order, 8)
	assert.Equal(t, []string{"A-B", "A-D", "A-E"}, seen[:3])

	assert.Panics(t, func() { bfs.WithRoadFilter(nil) })
}

func TestBFS_MaxHops(t *testing.T) {
	res, err := bfs.BFS(sample(t), "A", bfs.WithMaxHops(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "D", "E"}, res.Order)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(sample(t), "Z")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(sample(t), "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	assert.Panics(t, func() { bfs.WithMaxHops(-1) })
}

func TestComponents(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, g.AddVertex(id, 0))
	}
	_, err := g.Connect("A", "C", 1, 1)
	require.NoError(t, err)
	_, err = g.Connect("B", "D", 1, 1)
	require.NoError(t, err)

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "C"}, {"B", "D"}, {"E"}}, comps)
}
