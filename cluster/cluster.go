// Package cluster implements the live, filtered view DenGraphIO exposes
// for a single density-connected cluster: a core/border node split over
// a shared host graph.
package cluster

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/dengraph-go/dengraph/graph"
)

// State classifies a node's membership within a Cluster.
type State int

const (
	// BorderNode is reachable from a core node but has fewer than the
	// configured core_neighbours of its own; it may belong to more than
	// one Cluster at once.
	BorderNode State = iota
	// CoreNode has at least core_neighbours neighbours within
	// cluster_distance; exclusive to a single Cluster.
	CoreNode
)

// Cluster is a live view over graph: its core and border node sets
// reference nodes of graph but store no edges of their own. ID is a
// stable handle surviving recluster/merge bookkeeping in package engine.
type Cluster struct {
	ID    uuid.UUID
	graph graph.Graph

	core   map[graph.Node]struct{}
	border map[graph.Node]struct{}
}

// New builds an empty Cluster backed by g.
func New(g graph.Graph) *Cluster {
	return &Cluster{
		ID:     uuid.New(),
		graph:  g,
		core:   make(map[graph.Node]struct{}),
		border: make(map[graph.Node]struct{}),
	}
}

// Categorize assigns node to state, removing it from the other set first:
// core and border membership are mutually exclusive, and re-categorizing
// an already-categorized node is idempotent.
func (c *Cluster) Categorize(node graph.Node, state State) {
	switch state {
	case CoreNode:
		delete(c.border, node)
		c.core[node] = struct{}{}
	case BorderNode:
		delete(c.core, node)
		c.border[node] = struct{}{}
	}
}

// Uncategorize removes node from the cluster entirely.
func (c *Cluster) Uncategorize(node graph.Node) {
	delete(c.core, node)
	delete(c.border, node)
}

// Contains reports whether node is a core or border member.
func (c *Cluster) Contains(node graph.Node) bool {
	if _, ok := c.core[node]; ok {
		return true
	}
	_, ok := c.border[node]

	return ok
}

// State reports node's membership state and whether it is a member at all.
func (c *Cluster) State(node graph.Node) (State, bool) {
	if _, ok := c.core[node]; ok {
		return CoreNode, true
	}
	if _, ok := c.border[node]; ok {
		return BorderNode, true
	}

	return 0, false
}

// Len returns the total number of core plus border members.
func (c *Cluster) Len() int {
	return len(c.core) + len(c.border)
}

// CoreNodes returns the core member nodes in a deterministic order.
func (c *Cluster) CoreNodes() []graph.Node {
	return sortedNodes(c.core)
}

// BorderNodes returns the border member nodes in a deterministic order.
func (c *Cluster) BorderNodes() []graph.Node {
	return sortedNodes(c.border)
}

// Nodes returns every member, border nodes first then core nodes.
func (c *Cluster) Nodes() []graph.Node {
	out := make([]graph.Node, 0, c.Len())
	out = append(out, c.BorderNodes()...)
	out = append(out, c.CoreNodes()...)

	return out
}

// Neighbours returns node's neighbours in the host graph within distance,
// filtered to members of this cluster only.
func (c *Cluster) Neighbours(node graph.Node, distance float64) ([]graph.Node, error) {
	all, err := c.graph.Neighbours(node, distance)
	if err != nil {
		return nil, err
	}
	out := make([]graph.Node, 0, len(all))
	for _, n := range all {
		if c.Contains(n) {
			out = append(out, n)
		}
	}

	return out, nil
}

// Equal compares two clusters by core and border node membership only:
// host graph identity and cluster ID are deliberately excluded.
func (c *Cluster) Equal(other *Cluster) bool {
	if other == nil {
		return false
	}

	return setEqual(c.core, other.core) && setEqual(c.border, other.border)
}

func setEqual(a, b map[graph.Node]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}

	return true
}

func sortedNodes(set map[graph.Node]struct{}) []graph.Node {
	out := make([]graph.Node, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return fmtLess(out[i], out[j])
	})

	return out
}

func fmtLess(a, b graph.Node) bool {
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return as < bs
		}
	}

	return fmt.Sprintf("%v", a) < fmt.Sprintf("%v", b)
}
