package distance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dengraph-go/dengraph/distance"
)

func TestFunc_CallAndSymmetry(t *testing.T) {
	d := distance.NewFunc(func(a, b distance.Node) (float64, error) {
		af, bf := a.(float64), b.(float64)
		diff := af - bf
		if diff < 0 {
			diff = -diff
		}
		return diff, nil
	}, true)

	w, err := d.Call(5.0, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)
	assert.True(t, d.IsSymmetric())
}

func TestAsMeanCapable(t *testing.T) {
	mc, err := distance.AsMeanCapable(distance.NumericMean{Symmetric: true})
	require.NoError(t, err)
	assert.NotNil(t, mc)

	plain := distance.NewFunc(func(a, b distance.Node) (float64, error) { return 0, nil }, true)
	_, err = distance.AsMeanCapable(plain)
	assert.ErrorIs(t, err, distance.ErrNoDistanceSupport)
}
