package graphio

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dengraph-go/dengraph/graph"
)

// yamlGraph mirrors the CSV wire shape for callers who prefer a
// self-describing format: a flat node -> (neighbour -> weight) mapping.
type yamlGraph struct {
	Symmetric bool                          `yaml:"symmetric"`
	Edges     map[string]map[string]float64 `yaml:"edges"`
}

// ReadYAML parses r as a YAML document of the form:
//
//	symmetric: true
//	edges:
//	  a: {b: 1.0}
//	  b: {}
//
// into the same map[graph.Node]map[graph.Node]float64 source shape ReadCSV
// produces, honoring the document's own symmetric flag (mirroring every
// edge's reverse direction) in addition to whatever the caller passes to
// graph.NewAdjacencyGraph.
func ReadYAML(r io.Reader) (map[graph.Node]map[graph.Node]float64, error) {
	var doc yamlGraph
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	out := make(map[graph.Node]map[graph.Node]float64, len(doc.Edges))
	for from, nbrs := range doc.Edges {
		if _, ok := out[from]; !ok {
			out[from] = make(map[graph.Node]float64)
		}
		for to, w := range nbrs {
			out[from][to] = w
			if doc.Symmetric {
				if _, ok := out[to]; !ok {
					out[to] = make(map[graph.Node]float64)
				}
				out[to][from] = w
			}
		}
	}

	return out, nil
}
