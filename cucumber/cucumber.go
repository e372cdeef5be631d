// Package cucumber moves two herds of sea cucumbers around a wrapping grid.
//
// Each step the east-facing herd moves first and then the south-facing herd.
// Within a herd every cucumber decides from the same snapshot: it moves one
// cell if the destination, wrapping at the edge, was empty before the herd
// moved.
package cucumber

import (
	"errors"
	"strings"

	"github.com/katalvlaran/aoc2021/gridgraph"
)

// Cell values.
const (
	Empty = iota
	East
	South
)

// ErrNoFixpoint is returned when herds are still moving at the step limit.
var ErrNoFixpoint = errors.New("cucumber: herds still moving at limit")

var glyphs = map[rune]int{'.': Empty, '>': East, 'v': South}

// Floor is the sea floor grid plus scratch space for herd moves.
type Floor struct {
	Grid  *gridgraph.Grid
	moves []int
}

// Parse reads a map of '.', '>' and 'v'.
func Parse(text string) (*Floor, error) {
	g, err := gridgraph.FromRunes(text, glyphs)
	if err != nil {
		return nil, err
	}
	return &Floor{Grid: g}, nil
}

// dest returns the cell a cucumber of herd at idx would move into.
func (f *Floor) dest(idx, herd int) int {
	x, y := f.Grid.Coordinate(idx)
	if herd == East {
		return f.Grid.Index((x+1)%f.Grid.Width, y)
	}
	return f.Grid.Index(x, (y+1)%f.Grid.Height)
}

// moveHerd collects every movable cucumber of herd first, then moves them.
func (f *Floor) moveHerd(herd int) int {
	cells := f.Grid.Cells
	f.moves = f.moves[:0]
	for i, v := range cells {
		if v == herd && cells[f.dest(i, herd)] == Empty {
			f.moves = append(f.moves, i)
		}
	}
	for _, i := range f.moves {
		cells[i] = Empty
		cells[f.dest(i, herd)] = herd
	}
	return len(f.moves)
}

// Step moves the east herd and then the south herd, returning total moves.
func (f *Floor) Step() int {
	return f.moveHerd(East) + f.moveHerd(South)
}

// Settle steps until nothing moves and returns the 1-based number of that
// first motionless step.
func (f *Floor) Settle(limit int) (int, error) {
	for step := 1; step <= limit; step++ {
		if f.Step() == 0 {
			return step, nil
		}
	}
	return 0, ErrNoFixpoint
}

// Render draws the floor with the input glyphs, one row per line.
func (f *Floor) Render() string {
	var b strings.Builder
	b.Grow((f.Grid.Width + 1) * f.Grid.Height)
	for i, v := range f.Grid.Cells {
		switch v {
		case East:
			b.WriteByte('>')
		case South:
			b.WriteByte('v')
		default:
			b.WriteByte('.')
		}
		if (i+1)%f.Grid.Width == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
