package bfs

import (
	"context"
	"fmt"

	"github.com/dengraph-go/dengraph/graph"
)

// queueItem pairs a node with its traversal depth and its parent.
type queueItem struct {
	node   graph.Node
	depth  int
	parent graph.Node
	hasPar bool
}

// walker encapsulates mutable traversal state.
type walker struct {
	host    graph.Graph
	epsilon float64
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[graph.Node]bool
	res     *Result
}

// Walk runs a breadth-first traversal of host starting from start, moving
// along edges within epsilon of each other (host.Neighbours(v, epsilon)).
// It answers "is dest reachable from start through a chain of short hops",
// a weaker question than density-connectivity since it ignores eta.
func Walk(host graph.Graph, start graph.Node, epsilon float64, opts ...Option) (*Result, error) {
	if host == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	nodes := host.Nodes()
	n := len(nodes)
	w := &walker{
		host:    host,
		epsilon: epsilon,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[graph.Node]bool, n),
		res: &Result{
			Order:  make([]graph.Node, 0, n),
			Depth:  make(map[graph.Node]int, n),
			Parent: make(map[graph.Node]graph.Node, n),
		},
	}

	if !host.HasNode(start) {
		return nil, ErrStartNotFound
	}

	w.enqueue(start, 0, graph.Node(nil), false)

	return w.res, w.loop()
}

func (w *walker) enqueue(n graph.Node, d int, parent graph.Node, hasPar bool) {
	w.visited[n] = true
	w.res.Depth[n] = d
	if hasPar {
		w.res.Parent[n] = parent
	}
	w.queue = append(w.queue, queueItem{node: n, depth: d, parent: parent, hasPar: hasPar})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbours(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
	}

	return nil
}

func (w *walker) enqueueNeighbours(item queueItem) error {
	nbrs, err := w.host.Neighbours(item.node, w.epsilon)
	if err != nil {
		return fmt.Errorf("bfs: neighbours of %v: %w", item.node, err)
	}
	for _, nbr := range nbrs {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.node, true)
		}
	}

	return nil
}
