package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dengraph-go/dengraph/bfs"
	"github.com/dengraph-go/dengraph/graph"
)

func chain() *graph.AdjacencyGraph {
	src := map[graph.Node]map[graph.Node]float64{
		1: {2: 1}, 2: {1: 1, 3: 1}, 3: {2: 1, 4: 1}, 4: {3: 1}, 9: {},
	}
	g, _ := graph.NewAdjacencyGraph(src, true)

	return g
}

func TestWalk_OrdersByDepth(t *testing.T) {
	g := chain()
	res, err := bfs.Walk(g, 1, graph.AnyDistance)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Depth[1])
	assert.Equal(t, 1, res.Depth[2])
	assert.Equal(t, 2, res.Depth[3])
	assert.Equal(t, 3, res.Depth[4])
	assert.NotContains(t, res.Depth, 9)
}

func TestWalk_PathToReconstructs(t *testing.T) {
	g := chain()
	res, err := bfs.Walk(g, 1, graph.AnyDistance)
	require.NoError(t, err)

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []graph.Node{1, 2, 3, 4}, path)
}

func TestWalk_MaxDepthLimitsExpansion(t *testing.T) {
	g := chain()
	res, err := bfs.Walk(g, 1, graph.AnyDistance, bfs.WithMaxDepth(1))
	require.NoError(t, err)

	assert.Contains(t, res.Depth, 2)
	assert.NotContains(t, res.Depth, 3)
}

func TestWalk_StartNotFound(t *testing.T) {
	g := chain()
	_, err := bfs.Walk(g, 99, graph.AnyDistance)
	require.Error(t, err)
	assert.True(t, errors.Is(err, bfs.ErrStartNotFound))
}

func TestWalk_OnVisitErrorAborts(t *testing.T) {
	g := chain()
	sentinel := errors.New("stop")
	_, err := bfs.Walk(g, 1, graph.AnyDistance, bfs.WithOnVisit(func(n graph.Node, depth int) error {
		if n == 3 {
			return sentinel
		}
		return nil
	}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, sentinel))
}
