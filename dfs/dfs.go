package dfs

import (
	"fmt"

	"github.com/dengraph-go/dengraph/graph"
)

// dfsWalker encapsulates state during a traversal.
type dfsWalker struct {
	host graph.Graph
	opts Options
	res  *Result
}

// Walk performs a depth-first traversal of host starting from start, moving
// along any direct edge (graph.AnyDistance) regardless of weight.
func Walk(host graph.Graph, start graph.Node, opts ...Option) (*Result, error) {
	if host == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if !host.HasNode(start) {
		return nil, ErrStartNotFound
	}

	nodes := host.Nodes()
	res := &Result{
		Order:   make([]graph.Node, 0, len(nodes)),
		Depth:   make(map[graph.Node]int, len(nodes)),
		Parent:  make(map[graph.Node]graph.Node, len(nodes)),
		Visited: make(map[graph.Node]bool, len(nodes)),
	}

	w := &dfsWalker{host: host, opts: o, res: res}
	if err := w.traverse(start, 0); err != nil {
		return res, err
	}

	return res, nil
}

// Components partitions every node of host into connected components,
// ignoring edge weight entirely — a plain-connectivity view to contrast
// against an engine's density-based cluster assignment.
func Components(host graph.Graph) ([][]graph.Node, error) {
	if host == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[graph.Node]bool)
	var out [][]graph.Node
	for _, v := range host.Nodes() {
		if seen[v] {
			continue
		}
		res, err := Walk(host, v)
		if err != nil {
			return nil, err
		}
		out = append(out, res.Order)
		for _, n := range res.Order {
			seen[n] = true
		}
	}

	return out, nil
}

func (w *dfsWalker) traverse(v graph.Node, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	nbrs, err := w.host.Neighbours(v, graph.AnyDistance)
	if err != nil {
		return fmt.Errorf("dfs: neighbours of %v: %w", v, err)
	}
	for _, nbr := range nbrs {
		if w.res.Visited[nbr] {
			continue
		}
		w.res.Parent[nbr] = v
		if err := w.traverse(nbr, depth+1); err != nil {
			return err
		}
	}

	w.res.Order = append(w.res.Order, v)

	return nil
}
