package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dengraph-go/dengraph/cluster"
	"github.com/dengraph-go/dengraph/graph"
)

func smallGraph(t *testing.T) *graph.AdjacencyGraph {
	t.Helper()
	g, err := graph.NewAdjacencyGraph(map[graph.Node]map[graph.Node]float64{
		1: {2: 1, 3: 1},
		2: {1: 1},
		3: {1: 1},
		4: {},
	}, true)
	require.NoError(t, err)

	return g
}

func TestCluster_CategorizeIsMutuallyExclusive(t *testing.T) {
	c := cluster.New(smallGraph(t))
	c.Categorize(1, cluster.BorderNode)
	assert.True(t, c.Contains(1))
	state, ok := c.State(1)
	require.True(t, ok)
	assert.Equal(t, cluster.BorderNode, state)

	c.Categorize(1, cluster.CoreNode)
	state, ok = c.State(1)
	require.True(t, ok)
	assert.Equal(t, cluster.CoreNode, state)
	assert.Equal(t, 1, c.Len())
}

func TestCluster_Uncategorize(t *testing.T) {
	c := cluster.New(smallGraph(t))
	c.Categorize(1, cluster.CoreNode)
	c.Uncategorize(1)
	assert.False(t, c.Contains(1))
	assert.Equal(t, 0, c.Len())
}

func TestCluster_NodesOrdersBorderThenCore(t *testing.T) {
	c := cluster.New(smallGraph(t))
	c.Categorize(3, cluster.CoreNode)
	c.Categorize(1, cluster.BorderNode)
	c.Categorize(2, cluster.BorderNode)

	nodes := c.Nodes()
	require.Len(t, nodes, 3)
	assert.ElementsMatch(t, []graph.Node{1, 2}, nodes[:2])
	assert.Equal(t, graph.Node(3), nodes[2])
}

func TestCluster_NeighboursFiltersToMembership(t *testing.T) {
	c := cluster.New(smallGraph(t))
	c.Categorize(1, cluster.CoreNode)
	c.Categorize(2, cluster.BorderNode)

	nbrs, err := c.Neighbours(1, graph.AnyDistance)
	require.NoError(t, err)
	assert.Equal(t, []graph.Node{2}, nbrs)
}

func TestCluster_EqualIgnoresHostGraphIdentity(t *testing.T) {
	a := cluster.New(smallGraph(t))
	a.Categorize(1, cluster.CoreNode)
	a.Categorize(2, cluster.BorderNode)

	b := cluster.New(smallGraph(t))
	b.Categorize(1, cluster.CoreNode)
	b.Categorize(2, cluster.BorderNode)

	assert.True(t, a.Equal(b))
	assert.NotEqual(t, a.ID, b.ID)

	b.Categorize(3, cluster.CoreNode)
	assert.False(t, a.Equal(b))
}
