package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dengraph-go/dengraph/distance"
	"github.com/dengraph-go/dengraph/engine/paramhint"
	"github.com/dengraph-go/dengraph/graph"
)

func newSuggestEpsCommand() *cobra.Command {
	var values string
	var percentile float64

	cmd := &cobra.Command{
		Use:   "suggest-eps",
		Short: "Suggest a cluster_distance from a comma-separated list of numeric nodes via MST knee heuristic",
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := parseNumericNodes(values)
			if err != nil {
				return err
			}
			d := distance.NewFunc(func(a, b distance.Node) (float64, error) {
				af, bf := a.(float64), b.(float64)
				diff := af - bf
				if diff < 0 {
					diff = -diff
				}
				return diff, nil
			}, true)

			eps, err := paramhint.SuggestEpsilon(nodes, d, percentile)
			if err != nil {
				return err
			}
			fmt.Printf("suggested cluster_distance: %v\n", eps)

			return nil
		},
	}
	cmd.Flags().StringVar(&values, "values", "", "comma-separated numeric node values")
	cmd.Flags().Float64Var(&percentile, "percentile", 0.9, "MST edge-weight percentile to use as the suggested epsilon")
	_ = cmd.MarkFlagRequired("values")

	return cmd
}

func parseNumericNodes(csv string) ([]graph.Node, error) {
	parts := strings.Split(csv, ",")
	out := make([]graph.Node, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("cmd/dengraph: %q is not numeric: %w", p, err)
		}
		out = append(out, v)
	}

	return out, nil
}
