package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dengraph-go/dengraph/bfs"
	"github.com/dengraph-go/dengraph/dfs"
)

// newReachCommand answers "is dest within epsilon-hop reach of start",
// a weaker question than density-connectivity since it ignores eta and
// core/border classification entirely.
func newReachCommand(cfg Config) *cobra.Command {
	var graphPath, format, start, dest string
	var epsilon float64

	cmd := &cobra.Command{
		Use:   "reach",
		Short: "Check epsilon-hop reachability between two nodes, ignoring core_neighbours",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadAdjacencyGraph(graphPath, format, cfg.Symmetric)
			if err != nil {
				return err
			}
			res, err := bfs.Walk(g, start, epsilon)
			if err != nil {
				return err
			}
			path, err := res.PathTo(dest)
			if err != nil {
				fmt.Printf("%v is not reachable from %v within distance %v\n", dest, start, epsilon)
				return nil
			}
			fmt.Printf("reachable: %v\n", path)

			return nil
		},
	}
	cmd.Flags().StringVar(&graphPath, "graph", "", "path to an encoded weighted graph")
	cmd.Flags().StringVar(&format, "format", "csv", `graph encoding: "csv" or "yaml"`)
	cmd.Flags().StringVar(&start, "from", "", "start node")
	cmd.Flags().StringVar(&dest, "to", "", "destination node")
	cmd.Flags().Float64Var(&epsilon, "epsilon", 1.0, "maximum hop distance")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// newComponentsCommand reports the graph's plain connected components,
// independent of any cluster_distance/core_neighbours choice, useful to
// sanity-check a graph before picking parameters for build.
func newComponentsCommand(cfg Config) *cobra.Command {
	var graphPath, format string

	cmd := &cobra.Command{
		Use:   "components",
		Short: "List connected components of a graph, ignoring edge weight entirely",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadAdjacencyGraph(graphPath, format, cfg.Symmetric)
			if err != nil {
				return err
			}
			comps, err := dfs.Components(g)
			if err != nil {
				return err
			}
			for i, c := range comps {
				fmt.Printf("component %d: %v\n", i, c)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&graphPath, "graph", "", "path to an encoded weighted graph")
	cmd.Flags().StringVar(&format, "format", "csv", `graph encoding: "csv" or "yaml"`)
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
