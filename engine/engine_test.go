package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dengraph-go/dengraph/distance"
	"github.com/dengraph-go/dengraph/engine"
	"github.com/dengraph-go/dengraph/graph"
)

func absIntDistance() distance.Func {
	return distance.NewFunc(func(a, b distance.Node) (float64, error) {
		ai, bi := a.(int), b.(int)
		d := ai - bi
		if d < 0 {
			d = -d
		}
		return float64(d), nil
	}, true)
}

func nodesOf(nodes ...int) []graph.Node {
	out := make([]graph.Node, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

func TestNewDenGraphIO_RejectsBadParameters(t *testing.T) {
	g := graph.NewDistanceGraph(nodesOf(1, 2), absIntDistance())
	_, err := engine.NewDenGraphIO(g, 0, 5)
	assert.ErrorIs(t, err, engine.ErrInvalidParameters)

	_, err = engine.NewDenGraphIO(g, 5, 0)
	assert.ErrorIs(t, err, engine.ErrInvalidParameters)
}

func TestDenGraphIO_SimpleNoise(t *testing.T) {
	g := graph.NewDistanceGraph(nodesOf(1, 2, 3, 4, 5, 6, 20), absIntDistance())
	e, err := engine.NewDenGraphIO(g, 5, 5)
	require.NoError(t, err)

	require.Len(t, e.Clusters(), 1)
	c := e.Clusters()[0]
	for _, n := range nodesOf(1, 2, 3, 4, 5, 6) {
		assert.True(t, c.Contains(n), "expected %v in cluster", n)
	}

	noise := e.Noise()
	assert.Equal(t, map[graph.Node]struct{}{20: {}}, noise)
}

func TestDenGraphIO_OverlappingBorder(t *testing.T) {
	nodes := nodesOf(1, 2, 3, 4, 5, 6, 9, 14, 15, 16, 17, 18, 19, 20)
	g := graph.NewDistanceGraph(nodes, absIntDistance())
	e, err := engine.NewDenGraphIO(g, 5, 5)
	require.NoError(t, err)

	require.Len(t, e.Clusters(), 2)

	nine := e.ClustersForNode(9)
	assert.Len(t, nine, 2)

	c := nine[0]
	nbrs, err := c.Neighbours(9, 5)
	require.NoError(t, err)
	assert.ElementsMatch(t, []graph.Node{4, 5, 6}, intersectKnown(nbrs, nodesOf(4, 5, 6, 14)))
}

func intersectKnown(got []graph.Node, allowed []graph.Node) []graph.Node {
	allowedSet := make(map[graph.Node]struct{}, len(allowed))
	for _, a := range allowed {
		allowedSet[a] = struct{}{}
	}
	var out []graph.Node
	for _, g := range got {
		if _, ok := allowedSet[g]; ok {
			out = append(out, g)
		}
	}
	return out
}

func TestDenGraphIO_IncrementalEqualsBatch(t *testing.T) {
	batchGraph := graph.NewDistanceGraph(nodesOf(1, 2, 3, 4, 5, 6), absIntDistance())
	batch, err := engine.NewDenGraphIO(batchGraph, 5, 5)
	require.NoError(t, err)

	incGraph := graph.NewDistanceGraph(nil, absIntDistance())
	inc, err := engine.NewDenGraphIO(incGraph, 5, 5)
	require.NoError(t, err)
	for _, n := range nodesOf(1, 2, 3, 4, 5, 6) {
		require.NoError(t, inc.Insert(n, nil))
	}

	assert.True(t, batch.Equal(inc))
}

func TestDenGraphIO_DowngradeOnRemoval(t *testing.T) {
	nodes := nodesOf(1, 3, 4, 5, 6, 7, 13, 14, 15, 16, 17, 18, 2)
	g := graph.NewDistanceGraph(nodes, absIntDistance())
	e, err := engine.NewDenGraphIO(g, 5, 5)
	require.NoError(t, err)

	require.NoError(t, e.Delete(2))

	refGraph := graph.NewDistanceGraph(nodesOf(1, 3, 4, 5, 6, 7, 13, 14, 15, 16, 17, 18), absIntDistance())
	ref, err := engine.NewDenGraphIO(refGraph, 5, 5)
	require.NoError(t, err)

	assert.True(t, e.Equal(ref))
}

func TestDenGraphIO_DissolutionMatchesRebuild(t *testing.T) {
	g := graph.NewDistanceGraph(nodesOf(1, 2, 3, 4, 5, 6), absIntDistance())
	e, err := engine.NewDenGraphIO(g, 5, 5)
	require.NoError(t, err)

	require.NoError(t, e.Delete(6))

	refGraph := graph.NewDistanceGraph(nodesOf(1, 2, 3, 4, 5), absIntDistance())
	ref, err := engine.NewDenGraphIO(refGraph, 5, 5)
	require.NoError(t, err)

	assert.True(t, e.Equal(ref))
}

func TestDenGraphIO_ClustersForNodeNoise(t *testing.T) {
	g := graph.NewDistanceGraph(nodesOf(1, 2, 3, 4, 5, 6, 20), absIntDistance())
	e, err := engine.NewDenGraphIO(g, 5, 5)
	require.NoError(t, err)

	assert.Empty(t, e.ClustersForNode(20))
}
