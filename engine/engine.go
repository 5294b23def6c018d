// Package engine implements DenGraphIO, the incremental density-based
// clustering engine: fixed ε (cluster_distance) and η (core_neighbours)
// over a host graph.Graph, maintaining an ordered list of cluster.Cluster
// views plus a noise set under streaming insertions and deletions.
package engine

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/dengraph-go/dengraph/cluster"
	"github.com/dengraph-go/dengraph/graph"
)

// DenGraphIO is the clustering engine. Not safe for concurrent use: per its
// design, all public operations are single-threaded and atomic from the
// caller's perspective (a mutation either fully reconciles state or leaves
// it unchanged and returns an error).
type DenGraphIO struct {
	host graph.Graph

	epsilon float64
	eta     int

	clusters   []*cluster.Cluster
	noise      map[graph.Node]struct{}
	coreOwner  map[graph.Node]*cluster.Cluster
	membership map[graph.Node]map[uuid.UUID]*cluster.Cluster // border overlap index
	seqOf      map[*cluster.Cluster]int64
	nextSeq    int64
}

// NewDenGraphIO constructs an engine over base with the given parameters
// and performs its initial build eagerly.
func NewDenGraphIO(base graph.Graph, clusterDistance float64, coreNeighbours int) (*DenGraphIO, error) {
	if clusterDistance <= 0 || coreNeighbours < 1 {
		return nil, ErrInvalidParameters
	}
	e := &DenGraphIO{
		host:    base,
		epsilon: clusterDistance,
		eta:     coreNeighbours,
	}
	if err := e.build(); err != nil {
		return nil, err
	}

	return e, nil
}

// ClusterDistance returns ε.
func (e *DenGraphIO) ClusterDistance() float64 { return e.epsilon }

// CoreNeighbours returns η.
func (e *DenGraphIO) CoreNeighbours() int { return e.eta }

// Clusters returns the current ordered cluster list. Callers must not
// mutate the returned slice's cluster contents directly.
func (e *DenGraphIO) Clusters() []*cluster.Cluster {
	out := make([]*cluster.Cluster, len(e.clusters))
	copy(out, e.clusters)

	return out
}

// Noise returns the current noise set.
func (e *DenGraphIO) Noise() map[graph.Node]struct{} {
	out := make(map[graph.Node]struct{}, len(e.noise))
	for n := range e.noise {
		out[n] = struct{}{}
	}

	return out
}

// ClustersForNode returns every cluster v currently belongs to (core:
// exactly one; border: possibly several).
func (e *DenGraphIO) ClustersForNode(v graph.Node) []*cluster.Cluster {
	if c, ok := e.coreOwner[v]; ok {
		return []*cluster.Cluster{c}
	}
	mem, ok := e.membership[v]
	if !ok {
		return nil
	}
	out := make([]*cluster.Cluster, 0, len(mem))
	for _, c := range mem {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return e.seqOf[out[i]] < e.seqOf[out[j]] })

	return out
}

// Has reports whether v is known to the engine (present in the host graph).
func (e *DenGraphIO) Has(v graph.Node) bool {
	return e.host.HasNode(v)
}

// Get returns v's outgoing edges in the host graph. ErrNoSuchNode if v is
// absent.
func (e *DenGraphIO) Get(v graph.Node) (graph.Edges, error) {
	return e.host.Get(v)
}

// build runs the full from-scratch clustering pass over every node
// currently in the host graph.
func (e *DenGraphIO) build() error {
	nodes := e.host.Nodes()
	sortNodes(nodes)

	e.clusters = nil
	e.noise = make(map[graph.Node]struct{})
	e.coreOwner = make(map[graph.Node]*cluster.Cluster)
	e.membership = make(map[graph.Node]map[uuid.UUID]*cluster.Cluster)
	e.seqOf = make(map[*cluster.Cluster]int64)
	e.nextSeq = 0

	clusters, _, err := e.densityConnect(nodes)
	if err != nil {
		return err
	}
	e.adopt(clusters)

	return nil
}

// adopt installs clusters as the engine's current cluster list, rebuilding
// the coreOwner/membership indices and the noise set (every host node not
// covered by any cluster) from scratch. Cheap relative to a full
// density-connect pass, so every mutating path ends by calling this
// instead of trying to patch the indices incrementally.
func (e *DenGraphIO) adopt(clusters []*cluster.Cluster) {
	e.clusters = clusters
	e.coreOwner = make(map[graph.Node]*cluster.Cluster)
	e.membership = make(map[graph.Node]map[uuid.UUID]*cluster.Cluster)
	covered := make(map[graph.Node]struct{})
	for _, c := range e.clusters {
		if _, ok := e.seqOf[c]; !ok {
			e.nextSeq++
			e.seqOf[c] = e.nextSeq
		}
		for _, n := range c.CoreNodes() {
			e.coreOwner[n] = c
			covered[n] = struct{}{}
		}
		for _, n := range c.BorderNodes() {
			if e.membership[n] == nil {
				e.membership[n] = make(map[uuid.UUID]*cluster.Cluster)
			}
			e.membership[n][c.ID] = c
			covered[n] = struct{}{}
		}
	}
	e.noise = make(map[graph.Node]struct{})
	for _, v := range e.host.Nodes() {
		if _, ok := covered[v]; !ok {
			e.noise[v] = struct{}{}
		}
	}
}

func sortNodes(nodes []graph.Node) {
	sort.Slice(nodes, func(i, j int) bool {
		return fmtLess(nodes[i], nodes[j])
	})
}

func fmtLess(a, b graph.Node) bool {
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return as < bs
		}
	}

	return fmt.Sprintf("%v", a) < fmt.Sprintf("%v", b)
}
