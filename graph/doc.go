// Package graph defines the uniform Graph contract DenGraph clusters over,
// plus two concrete realizations: an implicit DistanceGraph (edges computed
// on demand from a distance.Distance) and a materialised AdjacencyGraph /
// BoundedAdjacencyGraph (edges stored in an adjacency map).
//
// A Graph is a node set plus a partial function E: Node x Node -> Real>=0.
// "Partial" matters: the absence of an edge is a first-class outcome
// (ErrNoSuchEdge), not a zero weight. Node identity is any comparable Go
// value used as a map key (opaque, hashable — no ordering assumed).
//
// Materialised graphs are safe for concurrent use; each exposes separate
// locks for its node set and its edge/adjacency state, partitioning
// vertex-set mutation from adjacency mutation. The clustering engine built
// on top of this package is itself single-threaded (see package engine),
// so this concurrency exists for callers sharing one graph across
// goroutines outside the engine.
package graph
