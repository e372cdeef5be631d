// Package aoc2021 collects solutions to the Advent of Code 2021 puzzles.
//
// Each day lives in its own package and exposes a parser plus pure solver
// functions; none of them share state, so any number may run concurrently.
//
// Shared building blocks:
//
//	gridgraph/        flat row-major integer grid, 4/8-neighbourhoods, regions, tiling
//	bfs/              breadth-first flood over a grid with hooks and filters
//	dijkstra/         lowest-cost path where entering a cell costs its value
//	internal/input/   buffered input files and integer list parsing
//	internal/puzzle/  day to solver registry
//
// Days:
//
//	sonar (1)  dive (2)  diagnostic (3)  bingo (4)  vents (5)
//	lanternfish (6)  crabs (7)  segments (8)  basins (9)  syntax (10)
//	octopus (11)  caves (12)  origami (13)  polymer (14)  chiton (15)
//	trickshot (17)  dirac (21)  reactor (22)  alu (24)  cucumber (25)
//
// The aoc command in cmd/aoc runs any selection of days against input files.
package aoc2021
