package distance

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// NumericMean is a MeanCapable Distance over float64-valued nodes: Call is
// absolute difference, Mean is the arithmetic mean of the node values
// (computed via gonum/stat.Mean). This gives the otherwise-opaque
// "decomposition distance" collaborator a concrete, testable body for
// DenGraphFIO's cluster-representative maintenance.
//
// changes is accepted for interface symmetry with MeanCapable but ignored:
// a full recompute over nodes is O(len(nodes)) already, and gonum/stat has
// no incremental-mean primitive to exploit a smaller changes set with.
type NumericMean struct {
	Symmetric bool
}

// Call returns |a-b| for float64 nodes a, b.
func (NumericMean) Call(a, b Node) (float64, error) {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if !aok || !bok {
		return 0, fmt.Errorf("distance: NumericMean requires float64 nodes, got %T and %T", a, b)
	}
	d := af - bf
	if d < 0 {
		d = -d
	}

	return d, nil
}

// IsSymmetric reports the configured symmetry flag.
func (m NumericMean) IsSymmetric() bool {
	return m.Symmetric
}

// Mean returns the arithmetic mean of nodes as a float64 Node.
func (NumericMean) Mean(nodes []Node, _ []Node) (Node, error) {
	if len(nodes) == 0 {
		return 0.0, nil
	}
	values := make([]float64, 0, len(nodes))
	for _, n := range nodes {
		f, ok := n.(float64)
		if !ok {
			return nil, fmt.Errorf("distance: NumericMean requires float64 nodes, got %T", n)
		}
		values = append(values, f)
	}

	return stat.Mean(values, nil), nil
}
