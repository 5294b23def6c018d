package engine

import (
	"github.com/dengraph-go/dengraph/cluster"
	"github.com/dengraph-go/dengraph/distance"
	"github.com/dengraph-go/dengraph/graph"
)

// fixedClusterDistance and fixedCoreNeighbours are DenGraphFIO's built-in
// parameters: η=4 per the original DBSCAN paper's recommendation for 2D
// clustering, ε=0.1 an educated-guess default for that profile.
const (
	fixedClusterDistance = 0.1
	fixedCoreNeighbours  = 4
)

// DenGraphFIO is a fixed-parameter profile over DenGraphIO: it requires a
// distance.MeanCapable host distance and, on every insertion, refreshes the
// inserted node's cluster(s) representative via a layeredMean chained onto
// that cluster's existing representative layer. The representative is a
// pluggable observer only — DenGraphFIO's own classification logic never
// reads it.
type DenGraphFIO struct {
	*DenGraphIO

	mean  distance.MeanCapable
	byID  map[clusterKey]*layeredMean
	base  graph.Graph
}

type clusterKey = interface{} // uuid.UUID, kept generic to avoid importing uuid here

// NewDenGraphFIO builds a DenGraphFIO over base, which must expose its
// distance via meanDist (typically the same distance.MeanCapable used to
// build base as a graph.DistanceGraph). Returns distance.ErrNoDistanceSupport
// if meanDist is nil.
func NewDenGraphFIO(base graph.Graph, meanDist distance.MeanCapable) (*DenGraphFIO, error) {
	if meanDist == nil {
		return nil, distance.ErrNoDistanceSupport
	}
	inner, err := NewDenGraphIO(base, fixedClusterDistance, fixedCoreNeighbours)
	if err != nil {
		return nil, err
	}

	return &DenGraphFIO{
		DenGraphIO: inner,
		mean:       meanDist,
		byID:       make(map[clusterKey]*layeredMean),
		base:       base,
	}, nil
}

// Insert inserts (v, edges) and then refreshes the representative of every
// cluster v now belongs to.
func (f *DenGraphFIO) Insert(v graph.Node, edges graph.Edges) error {
	if err := f.DenGraphIO.Insert(v, edges); err != nil {
		return err
	}

	for _, c := range f.ClustersForNode(v) {
		if err := f.refreshRepresentative(c, v); err != nil {
			return err
		}
	}

	return nil
}

// refreshRepresentative computes or incrementally updates c's mean
// representative, chaining a new layeredMean child whenever node values
// change so prior snapshots (if retained by a caller) remain valid.
func (f *DenGraphFIO) refreshRepresentative(c *cluster.Cluster, changed graph.Node) error {
	layer, ok := f.byID[c.ID]
	if !ok {
		rep, err := f.mean.Mean(c.Nodes(), nil)
		if err != nil {
			return err
		}
		layer = newLayeredMean()
		layer.Set(repKey, toFloat(rep))
		f.byID[c.ID] = layer

		return nil
	}

	rep, err := f.mean.Mean(c.Nodes(), []graph.Node{changed})
	if err != nil {
		return err
	}
	next := layer.child()
	next.Set(repKey, toFloat(rep))
	f.byID[c.ID] = next

	return nil
}

// repKey is the single synthetic key each cluster's layeredMean stores its
// current representative value under.
const repKey = "representative"

// Representative returns c's current representative value, if one has
// been computed.
func (f *DenGraphFIO) Representative(c *cluster.Cluster) (float64, bool) {
	layer, ok := f.byID[c.ID]
	if !ok {
		return 0, false
	}

	return layer.Get(repKey)
}

func toFloat(v graph.Node) float64 {
	if f, ok := v.(float64); ok {
		return f
	}

	return 0
}
