package engine

import "github.com/dengraph-go/dengraph/cluster"

// recluster replaces target in e.clusters with the result of re-running
// densityConnect restricted to target's current members. The replacement
// may be zero, one, or several clusters; unaffected clusters keep their
// relative order. A no-op if target is no longer present (already spliced
// out by an earlier recluster this call).
func (e *DenGraphIO) recluster(target *cluster.Cluster) error {
	idx := -1
	for i, c := range e.clusters {
		if c == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	pool := target.Nodes()
	replacement, _, err := e.densityConnect(pool)
	if err != nil {
		return err
	}

	next := make([]*cluster.Cluster, 0, len(e.clusters)-1+len(replacement))
	next = append(next, e.clusters[:idx]...)
	next = append(next, replacement...)
	next = append(next, e.clusters[idx+1:]...)
	e.adopt(next)

	return nil
}
