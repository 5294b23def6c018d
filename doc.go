// Package dengraph implements DenGraph, an incremental density-based graph
// clusterer in the DBSCAN/DenStream lineage.
//
// A DenGraphIO engine tracks two density parameters, cluster_distance (ε)
// and core_neighbours (η), against a host graph.Graph. Nodes with at least
// η neighbours within ε become core nodes; nodes reachable from a core node
// become border nodes, which may belong to more than one cluster at once;
// everything else is noise. Insert and Delete update cluster membership
// incrementally rather than re-running the full pass, while Rebuild remains
// available as an explicit reconciliation path.
//
// Subpackages:
//
//	graph/     — the Graph contract, plus DistanceGraph (implicit,
//	             edges computed on demand) and AdjacencyGraph/
//	             BoundedAdjacencyGraph (materialised adjacency maps)
//	distance/  — pluggable Distance functions and the MeanCapable extension
//	             used for cluster representatives
//	cluster/   — the overlapping-membership cluster view
//	engine/    — DenGraphIO (build/insert/delete/recluster/equality) and the
//	             DenGraphFIO fixed-parameter profile
//	graphio/   — CSV and YAML adapters that decode a weighted graph into an
//	             AdjacencyGraph source
//	bfs/, dfs/ — plain-connectivity diagnostics, independent of any
//	             cluster_distance/core_neighbours choice
//	cmd/dengraph/ — a CLI exposing build/insert/delete/suggest-eps/reach/components
package dengraph
