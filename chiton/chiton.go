// Package chiton finds the lowest-risk route across a cavern of chitons.
//
// The cavern is a digit grid where entering a cell adds its risk level; the
// route runs from the top-left to the bottom-right cell. The full cavern is
// the map tiled five times in each direction, each tile step adding one to
// every risk and wrapping 10 back to 1.
package chiton

import (
	"github.com/katalvlaran/aoc2021/dijkstra"
	"github.com/katalvlaran/aoc2021/gridgraph"
)

// FullScale is the tiling factor of the full cavern.
const FullScale = 5

// Parse reads the risk map.
func Parse(text string) (*gridgraph.Grid, error) {
	return gridgraph.FromDigits(text)
}

// LowestRisk returns the total risk of the safest route across g.
func LowestRisk(g *gridgraph.Grid) (int64, error) {
	return dijkstra.LowestCost(g)
}

// Wrap raises risk v by tx+ty tile steps, wrapping into 1..9.
func Wrap(v, tx, ty int) int {
	return (v+tx+ty-1)%9 + 1
}

// Expand builds the n×n tiled cavern.
func Expand(g *gridgraph.Grid, n int) (*gridgraph.Grid, error) {
	return g.Tile(n, Wrap)
}

// FullRisk expands g by FullScale and returns its lowest route risk.
func FullRisk(g *gridgraph.Grid) (int64, error) {
	full, err := Expand(g, FullScale)
	if err != nil {
		return 0, err
	}
	return LowestRisk(full)
}
