// Package dfs implements depth-first traversal over a graph.Graph, used to
// compute plain connectivity (ignoring epsilon/eta) as a point of comparison
// against an engine's density-based cluster assignment: two nodes can be
// plainly connected yet fall into different clusters, or different noise.
package dfs

import (
	"context"
	"errors"

	"github.com/dengraph-go/dengraph/graph"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to Walk.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates the requested start node is absent.
	ErrStartNotFound = errors.New("dfs: start node not found")
)

// Option configures optional traversal behavior.
type Option func(*Options)

// Options holds configurable parameters for a traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is first discovered
	// (pre-order). Returning an error aborts the traversal.
	OnVisit func(id graph.Node) error

	// MaxDepth, if >= 0, limits recursion to the given depth.
	MaxDepth int
}

// DefaultOptions returns Options with background context, no hook, and no
// depth limit (MaxDepth = -1).
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context used for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id graph.Node) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth to limit (0 visits only the start node).
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// Result captures the outcome of a single-tree depth-first traversal.
type Result struct {
	Order   []graph.Node
	Depth   map[graph.Node]int
	Parent  map[graph.Node]graph.Node
	Visited map[graph.Node]bool
}
