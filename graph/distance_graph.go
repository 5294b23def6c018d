package graph

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dengraph-go/dengraph/distance"
)

// pairKey identifies an unordered or ordered node pair for the distance
// memoization cache, depending on the underlying Distance's symmetry.
type pairKey struct {
	a, b Node
}

// DistanceGraph is an implicit graph: it holds an explicit node set and a
// distance.Distance, computing edge weights as d(u,v) on demand instead of
// storing them. Symmetry follows the distance's flag.
type DistanceGraph struct {
	mu    sync.RWMutex
	nodes map[Node]struct{}
	d     distance.Distance

	cache *lru.Cache[pairKey, float64] // optional memoization, nil if disabled
}

// DistanceGraphOption configures a DistanceGraph at construction.
type DistanceGraphOption func(*DistanceGraph)

// WithCache backs pairwise distance lookups with an LRU of the given size.
// A distance function can be expensive, and the clustering engine
// re-queries neighbourhoods on every mutation — caching trades memory for
// avoiding repeat calls. A cache hit never changes the result versus a
// miss: Distance.Call must be pure, so this is purely an optimization.
func WithCache(size int) DistanceGraphOption {
	return func(g *DistanceGraph) {
		if size <= 0 {
			return
		}
		c, err := lru.New[pairKey, float64](size)
		if err == nil {
			g.cache = c
		}
	}
}

// NewDistanceGraph builds a DistanceGraph over nodes using d.
func NewDistanceGraph(nodes []Node, d distance.Distance, opts ...DistanceGraphOption) *DistanceGraph {
	g := &DistanceGraph{
		nodes: make(map[Node]struct{}, len(nodes)),
		d:     d,
	}
	for _, n := range nodes {
		g.nodes[n] = struct{}{}
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

func (g *DistanceGraph) key(a, b Node) pairKey {
	if g.d.IsSymmetric() {
		// Canonicalize ordering for a symmetric distance so (a,b) and (b,a)
		// share one cache slot. Node is `any`; we only need a stable,
		// deterministic tie-break, not a total order, so we fall back to
		// formatted comparison only when no natural ordering is
		// available — in practice nodes are comparable
		// scalars (ints, strings) where %v ordering is already stable.
		if lessNode(b, a) {
			a, b = b, a
		}
	}

	return pairKey{a: a, b: b}
}

// distanceOf returns d(a,b), consulting and populating the cache if enabled.
func (g *DistanceGraph) distanceOf(a, b Node) (float64, error) {
	if g.cache == nil {
		return g.d.Call(a, b)
	}
	k := g.key(a, b)
	if w, ok := g.cache.Get(k); ok {
		return w, nil
	}
	w, err := g.d.Call(a, b)
	if err != nil {
		return 0, err
	}
	g.cache.Add(k, w)

	return w, nil
}

// HasNode reports whether v is in the node set.
func (g *DistanceGraph) HasNode(v Node) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[v]

	return ok
}

// HasEdge reports whether both u and v are nodes and u != v (an implicit
// graph defines every pair of distinct nodes).
func (g *DistanceGraph) HasEdge(u, v Node) bool {
	return g.HasNode(u) && g.HasNode(v) && u != v
}

// Get returns every other node paired with its computed distance from v.
func (g *DistanceGraph) Get(v Node) (Edges, error) {
	if !g.HasNode(v) {
		return nil, ErrNoSuchNode
	}
	g.mu.RLock()
	others := make([]Node, 0, len(g.nodes))
	for n := range g.nodes {
		if n != v {
			others = append(others, n)
		}
	}
	g.mu.RUnlock()

	out := make(Edges, len(others))
	for _, n := range others {
		w, err := g.distanceOf(v, n)
		if err != nil {
			return nil, err
		}
		out[n] = w
	}

	return out, nil
}

// EdgeGet returns d(u,v), or ErrNoSuchEdge if u == v or either is absent.
func (g *DistanceGraph) EdgeGet(u, v Node) (float64, error) {
	if !g.HasEdge(u, v) {
		return 0, ErrNoSuchEdge
	}

	return g.distanceOf(u, v)
}

// SetNode inserts v into the node set. edges is accepted for interface
// conformance but ignored: an implicit graph's edges are always computed
// from the Distance, never stored.
func (g *DistanceGraph) SetNode(v Node, _ Edges) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes[v] = struct{}{}

	return nil
}

// EdgeSet is not supported on an implicit graph: its edges are derived, not
// stored. Always returns ErrNoSuchEdge.
func (g *DistanceGraph) EdgeSet(_, _ Node, _ float64) error {
	return ErrNoSuchEdge
}

// DeleteNode removes v from the node set.
func (g *DistanceGraph) DeleteNode(v Node) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.nodes[v]; !ok {
		return ErrNoSuchNode
	}
	delete(g.nodes, v)

	return nil
}

// DeleteEdge is not supported on an implicit graph. Always returns ErrNoSuchEdge.
func (g *DistanceGraph) DeleteEdge(_, _ Node) error {
	return ErrNoSuchEdge
}

// Nodes returns every node in the graph.
func (g *DistanceGraph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Node, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}

	return out
}

// Len returns the number of nodes.
func (g *DistanceGraph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Neighbours enumerates every other node and filters by d(v,u) <= distance
// (or returns all of them when distance == AnyDistance).
func (g *DistanceGraph) Neighbours(v Node, dist float64) ([]Node, error) {
	if !g.HasNode(v) {
		return nil, ErrNoSuchNode
	}
	g.mu.RLock()
	others := make([]Node, 0, len(g.nodes))
	for n := range g.nodes {
		if n != v {
			others = append(others, n)
		}
	}
	g.mu.RUnlock()

	out := make([]Node, 0, len(others))
	for _, n := range others {
		if dist == AnyDistance {
			out = append(out, n)
			continue
		}
		w, err := g.distanceOf(v, n)
		if err != nil {
			return nil, err
		}
		if w <= dist {
			out = append(out, n)
		}
	}

	return out, nil
}

// lessNode provides a best-effort, deterministic tie-break over comparable
// Node values for cache-key canonicalization. It never affects correctness
// (only whether (a,b) or (b,a) is the canonical cache key), only cache
// hit rate.
func lessNode(a, b Node) bool {
	switch av := a.(type) {
	case int:
		if bv, ok := b.(int); ok {
			return av < bv
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return av < bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	}

	return fmtLess(a, b)
}
