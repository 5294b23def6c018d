// This file declares the Node/Edges types, the Graph contract, and the
// sentinel errors every realization in this package returns.
package graph

import "errors"

// Sentinel errors for graph operations. Every realization in this package
// (DistanceGraph, AdjacencyGraph, BoundedAdjacencyGraph) returns these same
// values so callers can errors.Is against one taxonomy regardless of which
// Graph implementation they hold.
var (
	// ErrNoSuchNode indicates an operation referenced a node absent from the graph.
	ErrNoSuchNode = errors.New("graph: no such node")

	// ErrNoSuchEdge indicates an operation referenced an edge absent from the
	// graph, including an edge suppressed by a BoundedAdjacencyGraph's max distance.
	ErrNoSuchEdge = errors.New("graph: no such edge")

	// ErrUnsupportedSource indicates a constructor received a source value of a
	// type it cannot build a graph from.
	ErrUnsupportedSource = errors.New("graph: unsupported source type")

	// ErrWeightConflict indicates a Union found the same directed edge present
	// in both operands with differing weights.
	ErrWeightConflict = errors.New("graph: conflicting edge weights in union")
)

// Node is an opaque, hashable node identity. Any comparable Go value works;
// passing a non-comparable value (a slice, map, or func) as a Node panics
// the first time it is used as a map key, since a Node must be hashable.
type Node = any

// Edges is an outgoing-edge view: neighbour -> weight.
type Edges map[Node]float64

// AnyDistance is the neighbourhood-query sentinel meaning "no distance
// bound".
const AnyDistance = -1.0

// Graph is the uniform contract every realization in this module satisfies.
//
// Implementations: DistanceGraph (implicit, edges computed from a Distance),
// AdjacencyGraph and BoundedAdjacencyGraph (materialised adjacency maps).
type Graph interface {
	// HasNode reports whether v is a member of the graph.
	HasNode(v Node) bool

	// HasEdge reports whether the directed edge (u,v) is defined.
	HasEdge(u, v Node) bool

	// Get returns the outgoing edges of v. ErrNoSuchNode if v is absent.
	Get(v Node) (Edges, error)

	// EdgeGet returns the weight of edge (u,v). ErrNoSuchEdge if undefined
	// (including a node that does not exist).
	EdgeGet(u, v Node) (float64, error)

	// SetNode ensures v exists. If edges is non-nil and non-empty, v's
	// outgoing edges become the union of its previous edges and edges.
	SetNode(v Node, edges Edges) error

	// EdgeSet sets the weight of (u,v) to w. ErrNoSuchNode if either
	// endpoint is absent.
	EdgeSet(u, v Node, w float64) error

	// DeleteNode removes v and every edge incident to it. ErrNoSuchNode if absent.
	DeleteNode(v Node) error

	// DeleteEdge removes edge (u,v). ErrNoSuchEdge if undefined.
	DeleteEdge(u, v Node) error

	// Nodes returns all nodes currently in the graph, in no particular order
	// unless the implementation documents one.
	Nodes() []Node

	// Len returns the number of nodes.
	Len() int

	// Neighbours returns nodes u != v with d(v,u) <= distance (or every
	// direct neighbour when distance == AnyDistance). ErrNoSuchNode if v absent.
	Neighbours(v Node, distance float64) ([]Node, error)
}
