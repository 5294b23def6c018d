package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dengraph-go/dengraph/engine"
	"github.com/dengraph-go/dengraph/graph"
	"github.com/dengraph-go/dengraph/graphio"
)

func newBuildCommand(cfg Config) *cobra.Command {
	var graphPath, format string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build an engine from a CSV- or YAML-encoded graph and report its clusters",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadAdjacencyGraph(graphPath, format, cfg.Symmetric)
			if err != nil {
				return err
			}

			e, err := engine.NewDenGraphIO(g, cfg.ClusterDistance, cfg.CoreNeighbours)
			if err != nil {
				return err
			}

			reportClusters(e)

			return nil
		},
	}
	cmd.Flags().StringVar(&graphPath, "graph", "", "path to an encoded weighted graph")
	cmd.Flags().StringVar(&format, "format", "csv", `graph encoding: "csv" or "yaml"`)
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func loadAdjacencyGraph(path, format string, symmetric bool) (*graph.AdjacencyGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var src map[graph.Node]map[graph.Node]float64
	switch format {
	case "yaml":
		src, err = graphio.ReadYAML(f)
	default:
		src, err = graphio.ReadCSV(f, symmetric)
	}
	if err != nil {
		return nil, err
	}
	log.Debug().Int("nodes", len(src)).Str("format", format).Msg("loaded graph")

	return graph.NewAdjacencyGraph(src, symmetric)
}

func reportClusters(e *engine.DenGraphIO) {
	clusters := e.Clusters()
	log.Info().
		Int("clusters", len(clusters)).
		Int("noise", len(e.Noise())).
		Msg("clustering complete")

	for i, c := range clusters {
		fmt.Printf("cluster %d: core=%v border=%v\n", i, c.CoreNodes(), c.BorderNodes())
	}
	if len(e.Noise()) > 0 {
		noise := make([]graph.Node, 0, len(e.Noise()))
		for n := range e.Noise() {
			noise = append(noise, n)
		}
		fmt.Printf("noise: %v\n", noise)
	}
}
