// Package paramhint suggests a cluster_distance (ε) for a node set and
// distance function using a disjoint-set (union-find) minimum-spanning-tree
// pass: rather than the engine's own density-connect pass (which needs ε
// and η already fixed), an MST over the complete distance graph gives a
// data-driven candidate ε — the weight of the largest edge kept by a
// minimum spanning tree at a given percentile is a standard "elbow"
// heuristic for DBSCAN-family ε choice.
package paramhint

import (
	"errors"
	"sort"

	"github.com/dengraph-go/dengraph/distance"
	"github.com/dengraph-go/dengraph/graph"
)

// ErrInsufficientNodes is returned when fewer than two nodes are supplied:
// no meaningful spanning structure exists.
var ErrInsufficientNodes = errors.New("paramhint: need at least two nodes")

type WeightedEdge struct {
	U, V   graph.Node
	Weight float64
}

// SuggestEpsilon computes the minimum spanning tree over nodes under d and
// returns the weight at the given percentile (0..1) of its sorted edge
// weights — e.g. percentile 0.9 approximates the "knee" of the k-distance
// plot DBSCAN tuning guides recommend. percentile is clamped to [0,1].
func SuggestEpsilon(nodes []graph.Node, d distance.Distance, percentile float64) (float64, error) {
	if len(nodes) < 2 {
		return 0, ErrInsufficientNodes
	}
	if percentile < 0 {
		percentile = 0
	}
	if percentile > 1 {
		percentile = 1
	}

	mst, err := MST(nodes, d)
	if err != nil {
		return 0, err
	}
	if len(mst) == 0 {
		return 0, nil
	}

	weights := make([]float64, len(mst))
	for i, e := range mst {
		weights[i] = e.Weight
	}
	sort.Float64s(weights)

	idx := int(percentile * float64(len(weights)-1))

	return weights[idx], nil
}

// MST computes a minimum spanning tree over the complete graph implied by
// d over nodes, using Kruskal's algorithm with a disjoint-set (union-find
// with path compression and union by rank).
func MST(nodes []graph.Node, d distance.Distance) ([]WeightedEdge, error) {
	if len(nodes) < 2 {
		return nil, ErrInsufficientNodes
	}

	edges := make([]WeightedEdge, 0, len(nodes)*(len(nodes)-1)/2)
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			w, err := d.Call(nodes[i], nodes[j])
			if err != nil {
				return nil, err
			}
			edges = append(edges, WeightedEdge{U: nodes[i], V: nodes[j], Weight: w})
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	parent := make(map[graph.Node]graph.Node, len(nodes))
	rank := make(map[graph.Node]int, len(nodes))
	for _, n := range nodes {
		parent[n] = n
	}

	var find func(graph.Node) graph.Node
	find = func(n graph.Node) graph.Node {
		for parent[n] != n {
			parent[n] = parent[parent[n]]
			n = parent[n]
		}
		return n
	}
	union := func(a, b graph.Node) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			parent[ra] = rb
		} else {
			parent[rb] = ra
			if rank[ra] == rank[rb] {
				rank[ra]++
			}
		}
	}

	mst := make([]WeightedEdge, 0, len(nodes)-1)
	for _, e := range edges {
		if find(e.U) != find(e.V) {
			union(e.U, e.V)
			mst = append(mst, e)
			if len(mst) == len(nodes)-1 {
				break
			}
		}
	}

	return mst, nil
}
