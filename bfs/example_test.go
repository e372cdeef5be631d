package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/bfs"
	"github.com/katalvlaran/aoc2021/gridgraph"
)

// ExampleFlood measures the basin around the top-right low point of the
// heightmap; cells of height 9 are walls.
func ExampleFlood() {
	g, _ := gridgraph.FromDigits("2199943210\n3987894921\n9856789892\n8767896789\n9899965678")

	res, _ := bfs.Flood(g, g.Index(9, 0), bfs.WithFilterNeighbor(func(_, nbr int) bool {
		return g.Cells[nbr] != 9
	}))
	fmt.Println("basin size:", len(res.Order))
	// Output: basin size: 9
}
