// Package graphio adapts external wire formats into the raw
// map[graph.Node]map[graph.Node]float64 source graph.NewAdjacencyGraph and
// graph.NewBoundedAdjacencyGraph accept. ReadCSV is deliberately built on
// encoding/csv alone: this is a leaf adapter with no concurrency, retry,
// or protocol concerns a richer dependency would serve — see DESIGN.md for
// the stdlib justification.
package graphio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dengraph-go/dengraph/graph"
)

// ReadCSV parses r: a header row of node identifiers
// n1,n2,...,nk, then one row per header node giving its outgoing weight to
// each column node, where 0 denotes "no edge". When symmetric is true the
// transpose is loaded as well (mirroring every (i,j) weight onto (j,i)),
// matching AdjacencyGraph's own symmetric-mirror-on-write semantics.
func ReadCSV(r io.Reader, symmetric bool) (map[graph.Node]map[graph.Node]float64, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("graphio: reading header: %w", err)
	}
	nodes := make([]graph.Node, len(header))
	for i, h := range header {
		nodes[i] = h
	}

	out := make(map[graph.Node]map[graph.Node]float64, len(nodes))
	for _, n := range nodes {
		out[n] = make(map[graph.Node]float64)
	}

	rowIdx := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("graphio: reading row %d: %w", rowIdx, err)
		}
		if rowIdx >= len(nodes) {
			return nil, fmt.Errorf("graphio: row %d has no matching header node", rowIdx)
		}
		from := nodes[rowIdx]
		for col, cell := range record {
			if col >= len(nodes) {
				break
			}
			w, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("graphio: row %d col %d: %w", rowIdx, col, err)
			}
			if w == 0 {
				continue
			}
			to := nodes[col]
			out[from][to] = w
			if symmetric {
				out[to][from] = w
			}
		}
		rowIdx++
	}

	return out, nil
}
