package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/bfs"
	"github.com/katalvlaran/aoc2021/gridgraph"
)

func mustGrid(t *testing.T, text string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromDigits(text)
	require.NoError(t, err)
	return g
}

// TestFlood_Errors verifies that invalid inputs and options are rejected.
func TestFlood_Errors(t *testing.T) {
	_, err := bfs.Flood(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGridNil)

	g := mustGrid(t, "11\n11")
	_, err = bfs.Flood(g, 4)
	assert.ErrorIs(t, err, bfs.ErrStartOutOfRange)
	_, err = bfs.Flood(g, -1)
	assert.ErrorIs(t, err, bfs.ErrStartOutOfRange)

	_, err = bfs.Flood(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestFlood_ManhattanDepths checks that Conn4 depths on an open grid equal
// Manhattan distance, and Conn8 depths equal Chebyshev distance.
func TestFlood_ManhattanDepths(t *testing.T) {
	g, err := gridgraph.New(6, 4)
	require.NoError(t, err)

	res4, err := bfs.Flood(g, 0)
	require.NoError(t, err)
	res8, err := bfs.Flood(g, 0, bfs.WithConnectivity(gridgraph.Conn8))
	require.NoError(t, err)

	for i := 0; i < g.Len(); i++ {
		x, y := g.Coordinate(i)
		assert.Equal(t, x+y, res4.Depth[i], "conn4 depth at (%d,%d)", x, y)
		assert.Equal(t, max(x, y), res8.Depth[i], "conn8 depth at (%d,%d)", x, y)
	}
	assert.Len(t, res4.Order, g.Len())
}

// TestFlood_FilterWalls stops the flood at cells holding 9.
func TestFlood_FilterWalls(t *testing.T) {
	g := mustGrid(t, "119\n191\n911")
	res, err := bfs.Flood(g, 0, bfs.WithFilterNeighbor(func(_, nbr int) bool {
		return g.Cells[nbr] != 9
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, res.Order)
}

func TestFlood_MaxDepth(t *testing.T) {
	g, _ := gridgraph.New(5, 1)
	res, err := bfs.Flood(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestFlood_PathTo(t *testing.T) {
	g := mustGrid(t, "111\n991\n111")
	res, err := bfs.Flood(g, 0, bfs.WithFilterNeighbor(func(_, nbr int) bool {
		return g.Cells[nbr] != 9
	}))
	require.NoError(t, err)

	path, err := res.PathTo(g.Index(0, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 5, 8, 7, 6}, path)

	_, err = res.PathTo(g.Index(0, 1))
	assert.ErrorIs(t, err, bfs.ErrUnreached)
}

func TestFlood_Hooks(t *testing.T) {
	g, _ := gridgraph.New(3, 1)
	var enq, deq []int
	stop := errors.New("stop")

	_, err := bfs.Flood(g, 0,
		bfs.WithOnEnqueue(func(idx, _ int) { enq = append(enq, idx) }),
		bfs.WithOnDequeue(func(idx, _ int) { deq = append(deq, idx) }),
		bfs.WithOnVisit(func(idx, _ int) error {
			if idx == 1 {
				return stop
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1}, enq)
	assert.Equal(t, []int{0, 1}, deq)
}

func TestFlood_Cancelled(t *testing.T) {
	g, _ := gridgraph.New(3, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Flood(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
