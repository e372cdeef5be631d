package basins

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/aoc2021/bfs"
	"github.com/katalvlaran/aoc2021/gridgraph"
)

// Ridge is the height that bounds every basin.
const Ridge = 9

var (
	// ErrTooFewBasins is returned when fewer basins exist than requested.
	ErrTooFewBasins = errors.New("basins: not enough basins")
	// ErrAmbiguousBasin is returned when a basin does not drain to exactly one low point.
	ErrAmbiguousBasin = errors.New("basins: basin without a single low point")
)

// Parse reads a digit heightmap.
func Parse(text string) (*gridgraph.Grid, error) {
	return gridgraph.FromDigits(text)
}

// LowPoints returns the indices of all low points in row-major order.
func LowPoints(g *gridgraph.Grid) []int {
	var lows []int
	nbrs := make([]int, 0, 4)
	for i, h := range g.Cells {
		low := true
		nbrs = g.AppendNeighbors(nbrs[:0], i, gridgraph.Conn4)
		for _, n := range nbrs {
			if g.Cells[n] <= h {
				low = false
				break
			}
		}
		if low {
			lows = append(lows, i)
		}
	}
	return lows
}

// RiskLevel sums 1+height over all low points.
func RiskLevel(g *gridgraph.Grid) int {
	risk := 0
	for _, i := range LowPoints(g) {
		risk += g.Cells[i] + 1
	}
	return risk
}

// BasinSize counts the cells reachable from low without crossing a Ridge.
func BasinSize(g *gridgraph.Grid, low int) (int, error) {
	res, err := bfs.Flood(g, low, bfs.WithFilterNeighbor(func(_, to int) bool {
		return g.Cells[to] != Ridge
	}))
	if err != nil {
		return 0, fmt.Errorf("basins: %w", err)
	}
	return len(res.Order), nil
}

// Sizes returns the size of each low point's basin, largest first.
//
// Every non-ridge region must hold exactly one low point; a region with
// none, such as a flat plateau, or with several yields ErrAmbiguousBasin.
func Sizes(g *gridgraph.Grid) ([]int, error) {
	regions := g.Regions(gridgraph.Conn4, func(v int) bool { return v != Ridge })
	owner := make([]int, g.Len()) // region index + 1, 0 on ridges
	for ri, r := range regions {
		for _, i := range r {
			owner[i] = ri + 1
		}
	}
	claimed := make([]bool, len(regions))
	lows := LowPoints(g)
	sizes := make([]int, 0, len(lows))
	for _, low := range lows {
		ri := owner[low] - 1
		if ri < 0 {
			continue
		}
		if claimed[ri] {
			x, y := g.Coordinate(low)
			return nil, fmt.Errorf("%w: second low point at (%d,%d)", ErrAmbiguousBasin, x, y)
		}
		claimed[ri] = true
		n, err := BasinSize(g, low)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, n)
	}
	for ri, ok := range claimed {
		if !ok {
			x, y := g.Coordinate(regions[ri][0])
			return nil, fmt.Errorf("%w: no low point in region at (%d,%d)", ErrAmbiguousBasin, x, y)
		}
	}
	slices.SortFunc(sizes, func(a, b int) int { return b - a })
	return sizes, nil
}

// LargestProduct multiplies the sizes of the n largest basins.
func LargestProduct(g *gridgraph.Grid, n int) (int, error) {
	sizes, err := Sizes(g)
	if err != nil {
		return 0, err
	}
	if len(sizes) < n {
		return 0, fmt.Errorf("%w: have %d, want %d", ErrTooFewBasins, len(sizes), n)
	}
	product := 1
	for _, s := range sizes[:n] {
		product *= s
	}
	return product, nil
}
