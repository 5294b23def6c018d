package engine

import (
	"github.com/dengraph-go/dengraph/cluster"
	"github.com/dengraph-go/dengraph/graph"
)

// densityConnect runs a density-connected-component pass restricted to
// pool: every node in pool is classified as seed (core-qualifying) or not
// using its full ε-neighbourhood in the host graph, then seeds are
// expanded breadth-first and merged on contact, using the same
// queue/visited traversal shape as package bfs but specialized to density
// classification instead of shortest paths. Only pool members ever become
// members of the resulting clusters — a neighbour outside pool is
// consulted for seed classification but never enqueued.
//
// Used both by the initial build (pool = every host node) and by
// recluster (pool = one cluster's current members): a recluster is just
// this same pass re-run restricted to a single cluster's membership.
func (e *DenGraphIO) densityConnect(pool []graph.Node) ([]*cluster.Cluster, map[graph.Node]struct{}, error) {
	inPool := make(map[graph.Node]struct{}, len(pool))
	for _, v := range pool {
		inPool[v] = struct{}{}
	}

	seed := make(map[graph.Node]bool, len(pool))
	neigh := make(map[graph.Node][]graph.Node, len(pool))
	for _, v := range pool {
		n, err := e.host.Neighbours(v, e.epsilon)
		if err != nil {
			return nil, nil, err
		}
		neigh[v] = n
		if len(n) >= e.eta {
			seed[v] = true
		}
	}

	assigned := make(map[graph.Node]bool, len(pool))
	coreOwner := make(map[graph.Node]*cluster.Cluster, len(pool))
	seqOf := make(map[*cluster.Cluster]int64)
	var seq int64
	var clusters []*cluster.Cluster

	for _, v := range pool {
		if assigned[v] || !seed[v] {
			continue
		}
		cur := cluster.New(e.host)
		seq++
		seqOf[cur] = seq
		clusters = append(clusters, cur)

		cur.Categorize(v, cluster.CoreNode)
		assigned[v] = true
		coreOwner[v] = cur

		queue := filterPool(neigh[v], inPool)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]

			if seed[u] {
				if assigned[u] {
					owner := coreOwner[u]
					if owner != cur {
						keep, absorb := cur, owner
						if seqOf[owner] < seqOf[cur] {
							keep, absorb = owner, cur
						}
						mergeClusters(keep, absorb, coreOwner)
						clusters = removeCluster(clusters, absorb)
						cur = keep
					}
					continue
				}
				assigned[u] = true
				cur.Categorize(u, cluster.CoreNode)
				coreOwner[u] = cur
				queue = append(queue, filterPool(neigh[u], inPool)...)
				continue
			}
			if !cur.Contains(u) {
				cur.Categorize(u, cluster.BorderNode)
			}
		}
	}

	member := make(map[graph.Node]struct{})
	for _, c := range clusters {
		for _, n := range c.Nodes() {
			member[n] = struct{}{}
		}
	}
	noise := make(map[graph.Node]struct{})
	for _, v := range pool {
		if _, ok := member[v]; !ok {
			noise[v] = struct{}{}
		}
	}

	return clusters, noise, nil
}

// mergeClusters absorbs absorb's core and border members into keep,
// updating coreOwner for every moved core node. A member already core in
// keep is never demoted to border.
func mergeClusters(keep, absorb *cluster.Cluster, coreOwner map[graph.Node]*cluster.Cluster) {
	for _, n := range absorb.CoreNodes() {
		keep.Categorize(n, cluster.CoreNode)
		coreOwner[n] = keep
	}
	for _, n := range absorb.BorderNodes() {
		if !keep.Contains(n) {
			keep.Categorize(n, cluster.BorderNode)
		}
	}
}

func filterPool(nodes []graph.Node, inPool map[graph.Node]struct{}) []graph.Node {
	out := make([]graph.Node, 0, len(nodes))
	for _, n := range nodes {
		if _, ok := inPool[n]; ok {
			out = append(out, n)
		}
	}

	return out
}

func removeCluster(clusters []*cluster.Cluster, target *cluster.Cluster) []*cluster.Cluster {
	out := clusters[:0]
	for _, c := range clusters {
		if c != target {
			out = append(out, c)
		}
	}

	return out
}
