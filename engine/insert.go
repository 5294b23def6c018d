package engine

import (
	"sort"

	"github.com/dengraph-go/dengraph/cluster"
	"github.com/dengraph-go/dengraph/graph"
)

// Insert forwards (v, edges) to the host graph and reconciles clustering
// state: v is classified core/border/noise from its
// ε-neighbourhood, attached to (and merging) any core-owning clusters it
// touches; a core v takes its non-core ε-neighbours in as border nodes, and
// any border neighbour that now crosses the core threshold is upgraded in
// turn.
func (e *DenGraphIO) Insert(v graph.Node, edges graph.Edges) error {
	if err := e.host.SetNode(v, edges); err != nil {
		return err
	}

	nv, err := e.host.Neighbours(v, e.epsilon)
	if err != nil {
		return err
	}
	if err := e.classifyAndAttach(v, nv); err != nil {
		return err
	}

	return e.propagateUpgrades(nv)
}

// classifyAndAttach assigns v core (merging every cluster owning a core
// node in nv, and making the non-core nodes of nv border members of the
// result), border (possibly of several clusters), or noise, given its
// current ε-neighbourhood nv.
func (e *DenGraphIO) classifyAndAttach(v graph.Node, nv []graph.Node) error {
	owners := e.distinctCoreOwners(nv)

	switch {
	case len(nv) >= e.eta:
		keep := e.lowestSeq(owners)
		if keep == nil {
			keep = cluster.New(e.host)
			e.clusters = append(e.clusters, keep)
		}
		for _, owner := range owners {
			if owner == keep {
				continue
			}
			e.mergeAndDrop(keep, owner)
		}
		e.detachNode(v)
		keep.Categorize(v, cluster.CoreNode)
		for _, n := range nv {
			if _, isCore := e.coreOwner[n]; !isCore {
				keep.Categorize(n, cluster.BorderNode)
			}
		}
		e.adopt(e.clusters)

	case len(owners) > 0:
		e.detachNode(v)
		for _, owner := range owners {
			owner.Categorize(v, cluster.BorderNode)
		}
		e.adopt(e.clusters)

	default:
		e.detachNode(v)
		e.adopt(e.clusters)
	}

	return nil
}

// propagateUpgrades re-checks every border node among candidates and, for
// any whose ε-neighbourhood now meets η, promotes it to core via
// classifyAndAttach, cascading through its own neighbours.
func (e *DenGraphIO) propagateUpgrades(candidates []graph.Node) error {
	visited := make(map[graph.Node]bool)
	worklist := append([]graph.Node{}, candidates...)

	for len(worklist) > 0 {
		u := worklist[0]
		worklist = worklist[1:]
		if visited[u] {
			continue
		}
		visited[u] = true

		if _, isCore := e.coreOwner[u]; isCore {
			continue
		}
		if _, isBorder := e.membership[u]; !isBorder {
			continue
		}
		nu, err := e.host.Neighbours(u, e.epsilon)
		if err != nil {
			return err
		}
		if len(nu) < e.eta {
			continue
		}
		if err := e.classifyAndAttach(u, nu); err != nil {
			return err
		}
		worklist = append(worklist, nu...)
	}

	return nil
}

// distinctCoreOwners returns the distinct clusters owning a core node among
// nodes, in ascending creation-sequence order.
func (e *DenGraphIO) distinctCoreOwners(nodes []graph.Node) []*cluster.Cluster {
	seen := make(map[*cluster.Cluster]struct{})
	var out []*cluster.Cluster
	for _, n := range nodes {
		if owner, ok := e.coreOwner[n]; ok {
			if _, dup := seen[owner]; !dup {
				seen[owner] = struct{}{}
				out = append(out, owner)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return e.seqOf[out[i]] < e.seqOf[out[j]] })

	return out
}

// lowestSeq returns the owner with the smallest creation sequence, or nil
// if owners is empty. owners is already sorted ascending by distinctCoreOwners.
func (e *DenGraphIO) lowestSeq(owners []*cluster.Cluster) *cluster.Cluster {
	if len(owners) == 0 {
		return nil
	}

	return owners[0]
}

// mergeAndDrop absorbs absorb into keep and removes absorb from e.clusters.
func (e *DenGraphIO) mergeAndDrop(keep, absorb *cluster.Cluster) {
	mergeClusters(keep, absorb, e.coreOwner)
	e.clusters = removeCluster(e.clusters, absorb)
}

// detachNode removes v from every cluster's core/border sets and from the
// coreOwner/membership indices, in preparation for re-attaching it
// elsewhere.
func (e *DenGraphIO) detachNode(v graph.Node) {
	for _, c := range e.clusters {
		c.Uncategorize(v)
	}
	delete(e.coreOwner, v)
	delete(e.membership, v)
}
