package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dengraph-go/dengraph/graph"
)

func rawSource() map[graph.Node]map[graph.Node]float64 {
	return map[graph.Node]map[graph.Node]float64{
		1: {2: 1, 3: 1, 4: 1, 5: 1, 6: 2, 8: 1},
		2: {1: 1},
		3: {1: 1},
		4: {1: 1},
		5: {1: 1},
		6: {1: 2, 7: 1},
		7: {6: 1},
		8: {1: 1},
	}
}

func TestNewAdjacencyGraph_UnsupportedSource(t *testing.T) {
	_, err := graph.NewAdjacencyGraph([]int{1, 2, 3}, false)
	assert.ErrorIs(t, err, graph.ErrUnsupportedSource)
}

func TestAdjacencyGraph_GetAndEdgeGet(t *testing.T) {
	g, err := graph.NewAdjacencyGraph(rawSource(), false)
	require.NoError(t, err)

	w, err := g.EdgeGet(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)

	w, err = g.EdgeGet(6, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)

	_, err = g.EdgeGet(8, 7)
	assert.ErrorIs(t, err, graph.ErrNoSuchEdge)

	_, err = g.EdgeGet(9, 10)
	assert.ErrorIs(t, err, graph.ErrNoSuchEdge)

	edges, err := g.Get(2)
	require.NoError(t, err)
	assert.Equal(t, graph.Edges{1: 1}, edges)

	_, err = g.Get(9)
	assert.ErrorIs(t, err, graph.ErrNoSuchNode)
}

func TestAdjacencyGraph_SetNode(t *testing.T) {
	g, err := graph.NewAdjacencyGraph(nil, false)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, g.SetNode(i, nil))
	}
	assert.True(t, g.HasNode(1))
	assert.False(t, g.HasNode(5))

	for _, nullEdge := range []graph.Edges{nil, {}} {
		newNode := g.Len()
		assert.False(t, g.HasNode(newNode))
		require.NoError(t, g.SetNode(newNode, nullEdge))
		assert.True(t, g.HasNode(newNode))
		edges, err := g.Get(newNode)
		require.NoError(t, err)
		assert.Empty(t, edges)

		want := graph.Edges{1: 3, 2: 5}
		require.NoError(t, g.SetNode(newNode, want))
		edges, err = g.Get(newNode)
		require.NoError(t, err)
		assert.Equal(t, want, edges)
	}
}

func TestAdjacencyGraph_EdgeSetAndDelete(t *testing.T) {
	g, err := graph.NewAdjacencyGraph(rawSource(), false)
	require.NoError(t, err)

	assert.False(t, g.HasEdge(1, 7))
	require.NoError(t, g.EdgeSet(1, 7, 2))
	w, err := g.EdgeGet(1, 7)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)

	assert.ErrorIs(t, g.EdgeSet(1, 9, 1), graph.ErrNoSuchNode)
	assert.ErrorIs(t, g.EdgeSet(9, 1, 1), graph.ErrNoSuchNode)

	require.NoError(t, g.DeleteEdge(6, 7))
	assert.ErrorIs(t, g.DeleteEdge(6, 7), graph.ErrNoSuchEdge)
	require.NoError(t, g.DeleteNode(6))
	assert.ErrorIs(t, g.DeleteNode(6), graph.ErrNoSuchNode)
}

func TestAdjacencyGraph_Neighbours(t *testing.T) {
	g, err := graph.NewAdjacencyGraph(rawSource(), false)
	require.NoError(t, err)

	all, err := g.Neighbours(1, graph.AnyDistance)
	require.NoError(t, err)
	assert.ElementsMatch(t, []graph.Node{2, 3, 4, 5, 6, 8}, all)

	bounded, err := g.Neighbours(1, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []graph.Node{2, 3, 4, 5, 8}, bounded)

	_, err = g.Neighbours(9, graph.AnyDistance)
	assert.ErrorIs(t, err, graph.ErrNoSuchNode)
}

func TestBoundedAdjacencyGraph_DropsOversizeEdges(t *testing.T) {
	bg, err := graph.NewBoundedAdjacencyGraph(rawSource(), 1, false)
	require.NoError(t, err)

	w, err := bg.EdgeGet(6, 7)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)

	_, err = bg.EdgeGet(1, 6)
	assert.ErrorIs(t, err, graph.ErrNoSuchEdge)
}

func TestBoundedAdjacencyGraph_SetAboveBoundIsNoSuchEdge(t *testing.T) {
	bg, err := graph.NewBoundedAdjacencyGraph(rawSource(), 1, true)
	require.NoError(t, err)

	assert.False(t, bg.HasEdge(1, 6))
	require.NoError(t, bg.EdgeSet(1, 6, 2))
	_, err = bg.EdgeGet(1, 6)
	assert.ErrorIs(t, err, graph.ErrNoSuchEdge)

	require.NoError(t, bg.EdgeSet(1, 6, 1))
	w, err := bg.EdgeGet(1, 6)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
}

func TestAdjacencyGraph_UnionDisjoint(t *testing.T) {
	a, err := graph.NewAdjacencyGraph(map[graph.Node]map[graph.Node]float64{
		"x": {"y": 1},
	}, false)
	require.NoError(t, err)
	b, err := graph.NewAdjacencyGraph(map[graph.Node]map[graph.Node]float64{
		"z": {"w": 2},
	}, false)
	require.NoError(t, err)

	u, err := a.Union(b)
	require.NoError(t, err)
	assert.ElementsMatch(t, []graph.Node{"x", "y", "z", "w"}, u.Nodes())
	weight, err := u.EdgeGet("x", "y")
	require.NoError(t, err)
	assert.Equal(t, 1.0, weight)
}

func TestAdjacencyGraph_UnionConflict(t *testing.T) {
	a, err := graph.NewAdjacencyGraph(map[graph.Node]map[graph.Node]float64{
		"x": {"y": 1},
	}, false)
	require.NoError(t, err)
	b, err := graph.NewAdjacencyGraph(map[graph.Node]map[graph.Node]float64{
		"x": {"y": 2},
	}, false)
	require.NoError(t, err)

	_, err = a.Union(b)
	assert.ErrorIs(t, err, graph.ErrWeightConflict)
}

func TestAdjacencyGraph_UnionAssociative(t *testing.T) {
	a, _ := graph.NewAdjacencyGraph(map[graph.Node]map[graph.Node]float64{1: {2: 1}}, false)
	b, _ := graph.NewAdjacencyGraph(map[graph.Node]map[graph.Node]float64{3: {4: 1}}, false)
	c, _ := graph.NewAdjacencyGraph(map[graph.Node]map[graph.Node]float64{5: {6: 1}}, false)

	ab, err := a.Union(b)
	require.NoError(t, err)
	left, err := ab.Union(c)
	require.NoError(t, err)

	bc, err := b.Union(c)
	require.NoError(t, err)
	right, err := a.Union(bc)
	require.NoError(t, err)

	assert.ElementsMatch(t, left.Nodes(), right.Nodes())
}
