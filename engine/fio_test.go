package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dengraph-go/dengraph/distance"
	"github.com/dengraph-go/dengraph/engine"
	"github.com/dengraph-go/dengraph/graph"
)

func TestNewDenGraphFIO_RequiresMeanCapableDistance(t *testing.T) {
	_, err := engine.NewDenGraphFIO(graph.NewDistanceGraph(nil, absIntDistance()), nil)
	assert.ErrorIs(t, err, distance.ErrNoDistanceSupport)
}

func TestDenGraphFIO_InsertBuildsRepresentative(t *testing.T) {
	mean := distance.NumericMean{Symmetric: true}
	g := graph.NewDistanceGraph(nil, mean)
	f, err := engine.NewDenGraphFIO(g, mean)
	require.NoError(t, err)

	for i := 0.0; i < 5; i++ {
		require.NoError(t, f.Insert(i*0.01, nil))
	}

	for _, c := range f.Clusters() {
		rep, ok := f.Representative(c)
		if ok {
			assert.GreaterOrEqual(t, rep, 0.0)
		}
	}
}
