package graphio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dengraph-go/dengraph/graphio"
)

func TestReadYAML_Basic(t *testing.T) {
	doc := "symmetric: true\nedges:\n  a:\n    b: 1.5\n  b: {}\n"
	src, err := graphio.ReadYAML(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 1.5, src["a"]["b"])
	assert.Equal(t, 1.5, src["b"]["a"])
}

func TestReadYAML_Asymmetric(t *testing.T) {
	doc := "symmetric: false\nedges:\n  a:\n    b: 2\n"
	src, err := graphio.ReadYAML(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 2.0, src["a"]["b"])
	_, hasB := src["b"]
	assert.False(t, hasB)
}
