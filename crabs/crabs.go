// Package crabs aligns crab submarines on the position that minimises total
// fuel under a pluggable per-crab cost.
package crabs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/aoc2021/internal/input"
)

// ErrNoCrabs is returned when there is nothing to align.
var ErrNoCrabs = errors.New("crabs: empty position list")

// Cost returns the fuel one crab spends to travel dist steps.
type Cost func(dist int64) int64

// Linear charges one unit per step.
func Linear(dist int64) int64 { return dist }

// Triangular charges 1, 2, 3, ... for successive steps.
func Triangular(dist int64) int64 { return dist * (dist + 1) / 2 }

// Parse reads comma-separated horizontal positions.
func Parse(text string) ([]int64, error) {
	ps, err := input.Ints[int64](text, ",")
	if err != nil {
		return nil, fmt.Errorf("crabs: %w", err)
	}
	return ps, nil
}

// Cheapest tries every position between the outermost crabs and returns the
// one with the lowest total fuel. Ties resolve to the leftmost position.
func Cheapest(positions []int64, cost Cost) (pos, fuel int64, err error) {
	if len(positions) == 0 {
		return 0, 0, ErrNoCrabs
	}
	lo, hi := slices.Min(positions), slices.Max(positions)
	fuel = -1
	for p := lo; p <= hi; p++ {
		var total int64
		for _, c := range positions {
			total += cost(input.Abs(c - p))
		}
		if fuel < 0 || total < fuel {
			pos, fuel = p, total
		}
	}
	return pos, fuel, nil
}
