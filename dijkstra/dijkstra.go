package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/aoc2021/gridgraph"
)

// LowestCost returns the minimum total cost of entering cells along a path
// from Source to Target. Returns ErrNoPath if Target cannot be reached.
func LowestCost(g *gridgraph.Grid, opts ...Option) (int64, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return 0, err
	}
	r.process(r.options.Target)
	if d := r.dist[r.options.Target]; d != Unreachable {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %d from %d", ErrNoPath, r.options.Target, r.options.Source)
}

// Distances computes the lowest cost from Source to every cell. Unreached
// cells hold Unreachable. Target is ignored.
func Distances(g *gridgraph.Grid, opts ...Option) ([]int64, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return nil, err
	}
	r.process(-1)
	return r.dist, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *gridgraph.Grid
	options Options
	dist    []int64
	pq      nodePQ
	nbrs    []int
}

func newRunner(g *gridgraph.Grid, opts []Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	n := g.Len()
	if cfg.Target == -1 {
		cfg.Target = n - 1
	}
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: source %d", ErrOutOfRange, cfg.Source)
	}
	if cfg.Target < 0 || cfg.Target >= n {
		return nil, fmt.Errorf("%w: target %d", ErrOutOfRange, cfg.Target)
	}
	for i, c := range g.Cells {
		if c < 0 {
			x, y := g.Coordinate(i)
			return nil, fmt.Errorf("%w: cell (%d,%d) cost=%d", ErrNegativeWeight, x, y, c)
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		pq:      make(nodePQ, 0, n),
		nbrs:    make([]int, 0, 8),
	}
	for i := range r.dist {
		r.dist[i] = Unreachable
	}
	r.dist[cfg.Source] = 0
	heap.Push(&r.pq, nodeItem{idx: cfg.Source, dist: 0})

	return r, nil
}

// process pops entries in cost order until the heap drains, the goal is
// popped, or the cheapest entry exceeds MaxDistance. goal < 0 means no goal.
func (r *runner) process(goal int) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if item.idx == goal {
			return
		}
		if item.dist > r.options.MaxDistance {
			return
		}
		// stale entry: a cheaper route was recorded after this one was pushed
		if item.dist > r.dist[item.idx] {
			continue
		}
		r.relax(item)
	}
}

// relax tries to improve every neighbour of item.
func (r *runner) relax(item nodeItem) {
	r.nbrs = r.g.AppendNeighbors(r.nbrs[:0], item.idx, r.options.Conn)
	for _, v := range r.nbrs {
		newDist := item.dist + int64(r.g.Cells[v])
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		heap.Push(&r.pq, nodeItem{idx: v, dist: newDist})
	}
}

// nodeItem is a frontier entry: a cell and the cost of reaching it.
type nodeItem struct {
	idx  int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then idx.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
