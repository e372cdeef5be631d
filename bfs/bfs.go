// Package bfs provides breadth-first search over a gridgraph.Grid.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aoc2021/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *gridgraph.Grid
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	nbrs    []int
	res     *Result
}

// Flood runs breadth-first search on g starting from cell start,
// applying any number of functional Options.
// Returns ErrGridNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func Flood(g *gridgraph.Grid, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= g.Len() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, g.Len())
	}

	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make([]bool, g.Len()),
		nbrs:    make([]int, 0, 8),
		res: &Result{
			Depth:  make(map[int]int),
			Parent: make(map[int]int),
		},
	}

	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

// enqueue marks idx visited at depth d, records its parent and adds it to the queue.
func (w *walker) enqueue(idx, d, parent int) {
	w.visited[idx] = true
	w.res.Depth[idx] = d
	if parent >= 0 {
		w.res.Parent[idx] = parent
	}
	w.opts.OnEnqueue(idx, d)
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.idx, item.depth)

		w.res.Order = append(w.res.Order, item.idx)
		if err := w.opts.OnVisit(item.idx, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.idx, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbour.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	w.nbrs = w.grid.AppendNeighbors(w.nbrs[:0], item.idx, w.opts.Conn)
	for _, nbr := range w.nbrs {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.idx, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.idx)
	}
}
