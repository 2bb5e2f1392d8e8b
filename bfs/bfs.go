// Package bfs provides a multi-seed breadth-first walk over a core.Graph,
// following either forward or reverse adjacency.
//
// A node enters the visited set when it is first enqueued and is visited
// exactly once, when it is dequeued. Neighbors are enqueued after the visit
// hook has returned, so a hook observes every earlier-dequeued node's effects.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvnet/core"
)

// queueItem pairs a node ID with its walk depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable walk state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// Walk runs a breadth-first walk on g seeded with seeds (all at depth 0),
// applying any number of functional Options. Duplicate seeds are enqueued once.
// Returns ErrGraphNil or ErrSeedNotFound for invalid input, ErrOptionViolation
// for bad options, or any user-supplied hook error.
func Walk(g *core.Graph, seeds []core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate seeds
	for _, s := range seeds {
		if !g.HasNode(s) {
			return nil, fmt.Errorf("%w: %d", ErrSeedNotFound, s)
		}
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order: make([]core.NodeID, 0, n),
			Depth: make(map[core.NodeID]int, n),
		},
	}

	for _, s := range seeds {
		if !w.visited[s] {
			w.enqueue(s, 0)
		}
	}

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(id core.NodeID, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}

	var nbrs []core.NodeID
	if w.opts.Direction == Reverse {
		nbrs = w.graph.Predecessors(item.id)
	} else {
		nbrs = w.graph.Successors(item.id)
	}
	for _, nbr := range nbrs {
		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth)
		}
	}
}
