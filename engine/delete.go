package engine

import (
	"github.com/google/uuid"

	"github.com/dengraph-go/dengraph/cluster"
	"github.com/dengraph-go/dengraph/graph"
)

// Delete removes v from the host graph and reconciles clustering state:
// former core neighbours of v that fall below η are downgraded to border
// (if still adjacent to a core node) or noise, and every cluster touched
// by a downgrade is rebuilt via recluster.
func (e *DenGraphIO) Delete(v graph.Node) error {
	if !e.host.HasNode(v) {
		return graph.ErrNoSuchNode
	}

	nvOld, err := e.host.Neighbours(v, e.epsilon)
	if err != nil {
		return err
	}

	if err := e.host.DeleteNode(v); err != nil {
		return err
	}
	e.detachNode(v)

	touched := make(map[*cluster.Cluster]struct{})
	for _, u := range nvOld {
		owner, wasCore := e.coreOwner[u]
		if !wasCore {
			continue
		}
		nu, err := e.host.Neighbours(u, e.epsilon)
		if err != nil {
			return err
		}
		if len(nu) >= e.eta {
			continue // u still satisfies core density, no downgrade
		}

		owner.Uncategorize(u)
		delete(e.coreOwner, u)
		touched[owner] = struct{}{}

		for _, nb := range nu {
			if other, ok := e.coreOwner[nb]; ok {
				other.Categorize(u, cluster.BorderNode)
				if e.membership[u] == nil {
					e.membership[u] = make(map[uuid.UUID]*cluster.Cluster)
				}
				e.membership[u][other.ID] = other
			}
		}
	}

	for c := range touched {
		if err := e.recluster(c); err != nil {
			return err
		}
	}
	e.adopt(e.clusters)

	return nil
}
