package graph

import "sync"

// AdjacencyGraph is a materialised, weighted graph: adjacency[v] holds v's
// outgoing edges as a neighbour -> weight map. Edges carry a weight
// directly rather than an ID pointing into a catalog of parallel-edge
// entries, since a graph here is a partial function E: Node x Node ->
// Real, not a multigraph.
//
// Two separate RWMutexes guard node membership and edge/adjacency state,
// so a reader scanning Nodes() never blocks on edge mutation and vice
// versa.
type AdjacencyGraph struct {
	muNode sync.RWMutex // guards the node set
	muAdj  sync.RWMutex // guards adjacency

	symmetric bool
	adjacency map[Node]map[Node]float64
}

// BoundedAdjacencyGraph is an AdjacencyGraph that silently drops any edge
// write whose weight exceeds maxDistance instead of storing it: oversize
// writes are dropped, not rejected with an error.
type BoundedAdjacencyGraph struct {
	*AdjacencyGraph
	maxDistance float64
}

// NewAdjacencyGraph builds an AdjacencyGraph from source, which may be:
//   - nil: an empty graph;
//   - a Graph: nodes and edges are copied (only edges with weight <=
//     max.Float64 pass, i.e. all of them — bounding is BoundedAdjacencyGraph's job);
//   - map[Node]map[Node]float64: a raw adjacency mapping, copied.
//
// Any other source type returns ErrUnsupportedSource. symmetric, if true,
// mirrors every write (u,v,w) as (v,u,w).
func NewAdjacencyGraph(source any, symmetric bool) (*AdjacencyGraph, error) {
	g := &AdjacencyGraph{
		symmetric: symmetric,
		adjacency: make(map[Node]map[Node]float64),
	}
	if source == nil {
		return g, nil
	}
	switch src := source.(type) {
	case Graph:
		for _, v := range src.Nodes() {
			g.ensureNode(v)
			edges, err := src.Get(v)
			if err != nil {
				return nil, err
			}
			for u, w := range edges {
				g.ensureNode(u)
				g.adjacency[v][u] = w
				if symmetric {
					g.adjacency[u][v] = w
				}
			}
		}
	case map[Node]map[Node]float64:
		for v, edges := range src {
			g.ensureNode(v)
			for u, w := range edges {
				g.ensureNode(u)
				g.adjacency[v][u] = w
				if symmetric {
					g.adjacency[u][v] = w
				}
			}
		}
	default:
		return nil, ErrUnsupportedSource
	}

	return g, nil
}

// NewBoundedAdjacencyGraph builds a BoundedAdjacencyGraph from the same
// source kinds as NewAdjacencyGraph, but copies only edges whose weight is
// <= maxDistance; larger weights are dropped rather than erroring.
func NewBoundedAdjacencyGraph(source any, maxDistance float64, symmetric bool) (*BoundedAdjacencyGraph, error) {
	bg := &BoundedAdjacencyGraph{
		AdjacencyGraph: &AdjacencyGraph{
			symmetric: symmetric,
			adjacency: make(map[Node]map[Node]float64),
		},
		maxDistance: maxDistance,
	}
	if source == nil {
		return bg, nil
	}
	switch src := source.(type) {
	case Graph:
		for _, v := range src.Nodes() {
			bg.ensureNode(v)
			edges, err := src.Get(v)
			if err != nil {
				return nil, err
			}
			for u, w := range edges {
				if w > maxDistance {
					continue
				}
				bg.ensureNode(u)
				bg.adjacency[v][u] = w
				if symmetric {
					bg.adjacency[u][v] = w
				}
			}
		}
	case map[Node]map[Node]float64:
		for v, edges := range src {
			bg.ensureNode(v)
			for u, w := range edges {
				if w > maxDistance {
					continue
				}
				bg.ensureNode(u)
				bg.adjacency[v][u] = w
				if symmetric {
					bg.adjacency[u][v] = w
				}
			}
		}
	default:
		return nil, ErrUnsupportedSource
	}

	return bg, nil
}

// MaxDistance returns the bound above which edge writes are dropped.
func (bg *BoundedAdjacencyGraph) MaxDistance() float64 {
	return bg.maxDistance
}

// EdgeSet on a BoundedAdjacencyGraph drops (does not store) writes whose
// weight exceeds MaxDistance It still validates
// that both endpoints exist.
func (bg *BoundedAdjacencyGraph) EdgeSet(u, v Node, w float64) error {
	if !bg.HasNode(u) || !bg.HasNode(v) {
		return ErrNoSuchNode
	}
	if w > bg.maxDistance {
		// Silently rejected: if an edge existed below the bound already,
		// an over-bound rewrite still removes it.
		bg.muAdj.Lock()
		delete(bg.adjacency[u], v)
		if bg.symmetric {
			delete(bg.adjacency[v], u)
		}
		bg.muAdj.Unlock()
		return nil
	}

	return bg.AdjacencyGraph.EdgeSet(u, v, w)
}

// SetNode on a BoundedAdjacencyGraph ensures v exists and unions in only
// the entries of edges whose weight is <= MaxDistance; larger ones are
// dropped without an error.
func (bg *BoundedAdjacencyGraph) SetNode(v Node, edges Edges) error {
	kept := make(Edges, len(edges))
	for n, w := range edges {
		if w <= bg.maxDistance {
			kept[n] = w
		}
	}

	return bg.AdjacencyGraph.SetNode(v, kept)
}

func (g *AdjacencyGraph) ensureNode(v Node) {
	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = make(map[Node]float64)
	}
}

// HasNode reports whether v is a member of the graph.
func (g *AdjacencyGraph) HasNode(v Node) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.adjacency[v]

	return ok
}

// HasEdge reports whether (u,v) is defined.
func (g *AdjacencyGraph) HasEdge(u, v Node) bool {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	nbrs, ok := g.adjacency[u]
	if !ok {
		return false
	}
	_, ok = nbrs[v]

	return ok
}

// Get returns a copy of v's outgoing edges.
func (g *AdjacencyGraph) Get(v Node) (Edges, error) {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	nbrs, ok := g.adjacency[v]
	if !ok {
		return nil, ErrNoSuchNode
	}
	out := make(Edges, len(nbrs))
	for n, w := range nbrs {
		out[n] = w
	}

	return out, nil
}

// EdgeGet returns the weight of (u,v).
func (g *AdjacencyGraph) EdgeGet(u, v Node) (float64, error) {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	nbrs, ok := g.adjacency[u]
	if !ok {
		return 0, ErrNoSuchEdge
	}
	w, ok := nbrs[v]
	if !ok {
		return 0, ErrNoSuchEdge
	}

	return w, nil
}

// SetNode ensures v exists; if edges is non-empty its entries are unioned
// into v's outgoing edges (existing weights for repeated neighbours are
// overwritten by edges).
func (g *AdjacencyGraph) SetNode(v Node, edges Edges) error {
	g.muNode.Lock()
	g.ensureNode(v)
	g.muNode.Unlock()

	if len(edges) == 0 {
		return nil
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	for n, w := range edges {
		g.adjacency[v][n] = w
		if g.symmetric {
			if _, ok := g.adjacency[n]; !ok {
				g.adjacency[n] = make(map[Node]float64)
			}
			g.adjacency[n][v] = w
		}
	}

	return nil
}

// EdgeSet sets the weight of (u,v), mirroring to (v,u) in symmetric mode.
func (g *AdjacencyGraph) EdgeSet(u, v Node, w float64) error {
	g.muNode.RLock()
	_, okU := g.adjacency[u]
	_, okV := g.adjacency[v]
	g.muNode.RUnlock()
	if !okU || !okV {
		return ErrNoSuchNode
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	g.adjacency[u][v] = w
	if g.symmetric {
		g.adjacency[v][u] = w
	}

	return nil
}

// DeleteNode removes v and every edge incident to it.
func (g *AdjacencyGraph) DeleteNode(v Node) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	if _, ok := g.adjacency[v]; !ok {
		return ErrNoSuchNode
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	delete(g.adjacency, v)
	for _, nbrs := range g.adjacency {
		delete(nbrs, v)
	}

	return nil
}

// DeleteEdge removes edge (u,v).
func (g *AdjacencyGraph) DeleteEdge(u, v Node) error {
	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	nbrs, ok := g.adjacency[u]
	if !ok {
		return ErrNoSuchEdge
	}
	if _, ok = nbrs[v]; !ok {
		return ErrNoSuchEdge
	}
	delete(nbrs, v)
	if g.symmetric {
		delete(g.adjacency[v], u)
	}

	return nil
}

// Nodes returns every node currently in the graph.
func (g *AdjacencyGraph) Nodes() []Node {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]Node, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}

	return out
}

// Len returns the number of nodes.
func (g *AdjacencyGraph) Len() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.adjacency)
}

// Neighbours returns nodes u != v within distance of v (or all direct
// neighbours when distance == AnyDistance).
func (g *AdjacencyGraph) Neighbours(v Node, distance float64) ([]Node, error) {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	nbrs, ok := g.adjacency[v]
	if !ok {
		return nil, ErrNoSuchNode
	}
	out := make([]Node, 0, len(nbrs))
	for n, w := range nbrs {
		if n == v {
			continue
		}
		if distance == AnyDistance || w <= distance {
			out = append(out, n)
		}
	}

	return out, nil
}

// Union returns a new AdjacencyGraph containing every node of both
// operands; for each directed pair present in only one operand the edge
// is copied, and for a pair present in both with equal weight it is
// copied once. A pair present in both with differing weights returns
// ErrWeightConflict. The result inherits the left operand's symmetry flag.
func (g *AdjacencyGraph) Union(other *AdjacencyGraph) (*AdjacencyGraph, error) {
	out := &AdjacencyGraph{
		symmetric: g.symmetric,
		adjacency: make(map[Node]map[Node]float64),
	}
	for _, src := range []*AdjacencyGraph{g, other} {
		src.muAdj.RLock()
	}
	defer func() {
		for _, src := range []*AdjacencyGraph{g, other} {
			src.muAdj.RUnlock()
		}
	}()

	for v, nbrs := range g.adjacency {
		out.ensureNode(v)
		for u, w := range nbrs {
			out.ensureNode(u)
			out.adjacency[v][u] = w
		}
	}
	for v, nbrs := range other.adjacency {
		out.ensureNode(v)
		for u, w := range nbrs {
			out.ensureNode(u)
			if existing, ok := out.adjacency[v][u]; ok {
				if existing != w {
					return nil, ErrWeightConflict
				}
				continue
			}
			out.adjacency[v][u] = w
		}
	}

	return out, nil
}
