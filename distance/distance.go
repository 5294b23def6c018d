// Package distance defines the callable metric contract DenGraph's implicit
// graph layer is built on: a Distance is a pure function
// d(a,b) -> Real>=0 plus an optional symmetry flag. Distances need not be
// metrics (no triangle inequality required), but the clustering guarantees
// assume non-negative output and, in symmetric mode, d(a,b) == d(b,a).
package distance

import "errors"

// ErrNoDistanceSupport is returned when an engine requires a capability
// (currently only MeanCapable) that the supplied Distance does not
// implement.
var ErrNoDistanceSupport = errors.New("distance: distance does not support this capability")

// Node mirrors graph.Node without importing package graph (distance sits
// below graph in the dependency order: graph.DistanceGraph depends on
// distance.Distance, not the other way round).
type Node = any

// Distance computes a non-negative real distance between two nodes.
type Distance interface {
	// Call returns d(a,b). Implementations must be deterministic and pure
	// with respect to a and b.
	Call(a, b Node) (float64, error)

	// IsSymmetric reports whether d(a,b) == d(b,a) for all a, b.
	IsSymmetric() bool
}

// MeanCapable is an optional extension a Distance may implement to support
// DenGraphFIO's cluster-representative maintenance. Mean
// computes (or incrementally updates) a representative value for nodes;
// changes, when non-nil, names the subset of nodes whose contribution to
// the representative actually moved since the last call, letting an
// implementation update in O(changes) instead of O(nodes).
type MeanCapable interface {
	Distance

	Mean(nodes []Node, changes []Node) (Node, error)
}

// AsMeanCapable type-asserts d to MeanCapable, returning ErrNoDistanceSupport
// if it does not implement Mean. Engines that need representatives call
// this once at construction rather than repeating the type assertion.
func AsMeanCapable(d Distance) (MeanCapable, error) {
	mc, ok := d.(MeanCapable)
	if !ok {
		return nil, ErrNoDistanceSupport
	}

	return mc, nil
}

// Func adapts a plain distance function into a Distance, the
// common case exercised throughout the test suite (e.g. absolute
// difference |a-b|). Uses the same functional-option-adjacent idiom as
// bfs.Option: wrap a closure instead of requiring a full interface
// implementation for the simple case.
type Func struct {
	Fn        func(a, b Node) (float64, error)
	Symmetric bool
}

// NewFunc builds a Func distance from fn, defaulting IsSymmetric to symmetric.
func NewFunc(fn func(a, b Node) (float64, error), symmetric bool) Func {
	return Func{Fn: fn, Symmetric: symmetric}
}

// Call invokes the wrapped function.
func (f Func) Call(a, b Node) (float64, error) {
	return f.Fn(a, b)
}

// IsSymmetric returns the configured symmetry flag.
func (f Func) IsSymmetric() bool {
	return f.Symmetric
}
