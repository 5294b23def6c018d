package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dengraph-go/dengraph/engine"
	"github.com/dengraph-go/dengraph/graph"
)

func newInsertCommand(cfg Config) *cobra.Command {
	var csvPath, node string
	var edgeSpecs []string

	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Build an engine from a CSV graph, insert a node, report clusters",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadAdjacencyGraph(csvPath, "csv", cfg.Symmetric)
			if err != nil {
				return err
			}
			e, err := engine.NewDenGraphIO(g, cfg.ClusterDistance, cfg.CoreNeighbours)
			if err != nil {
				return err
			}
			edges, err := parseEdgeSpecs(edgeSpecs)
			if err != nil {
				return err
			}
			if err := e.Insert(node, edges); err != nil {
				return err
			}

			reportClusters(e)

			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "graph", "", "path to a CSV-encoded weighted graph")
	cmd.Flags().StringVar(&node, "node", "", "identifier of the node to insert")
	cmd.Flags().StringSliceVar(&edgeSpecs, "edge", nil, "neighbour:weight pair, repeatable")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}

// parseEdgeSpecs turns "neighbour:weight" flag values into graph.Edges.
func parseEdgeSpecs(specs []string) (graph.Edges, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	edges := make(graph.Edges, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("cmd/dengraph: malformed --edge %q, want neighbour:weight", spec)
		}
		w, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("cmd/dengraph: --edge %q: %w", spec, err)
		}
		edges[parts[0]] = w
	}

	return edges, nil
}

func newDeleteCommand(cfg Config) *cobra.Command {
	var csvPath, node string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Build an engine from a CSV graph, delete a node, report clusters",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadAdjacencyGraph(csvPath, "csv", cfg.Symmetric)
			if err != nil {
				return err
			}
			e, err := engine.NewDenGraphIO(g, cfg.ClusterDistance, cfg.CoreNeighbours)
			if err != nil {
				return err
			}
			if err := e.Delete(node); err != nil {
				return err
			}

			reportClusters(e)

			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "graph", "", "path to a CSV-encoded weighted graph")
	cmd.Flags().StringVar(&node, "node", "", "identifier of the node to delete")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}
