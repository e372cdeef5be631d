// Package octopus simulates a grid of flashing dumbo octopuses.
//
// Every step raises each energy level by one. An octopus above 9 flashes
// once, raising all eight neighbours, which may cascade. Flashed octopuses
// reset to 0 at the end of the step.
package octopus

import (
	"errors"

	"github.com/katalvlaran/aoc2021/gridgraph"
)

// ErrNoSync is returned when no synchronised flash occurs within the limit.
var ErrNoSync = errors.New("octopus: no synchronised flash within limit")

const threshold = 9

// Cavern holds the energy grid and a scratch stack reused across steps.
type Cavern struct {
	Grid  *gridgraph.Grid
	stack []int
	nbrs  []int
}

// Parse reads a digit grid.
func Parse(text string) (*Cavern, error) {
	g, err := gridgraph.FromDigits(text)
	if err != nil {
		return nil, err
	}
	return &Cavern{Grid: g, nbrs: make([]int, 0, 8)}, nil
}

// Step advances one step and returns how many octopuses flashed.
func (c *Cavern) Step() int {
	cells := c.Grid.Cells
	c.stack = c.stack[:0]
	for i := range cells {
		cells[i]++
		if cells[i] == threshold+1 {
			c.stack = append(c.stack, i)
		}
	}
	// Each octopus is pushed exactly once, when it first crosses the threshold.
	flashes := 0
	for len(c.stack) > 0 {
		i := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		flashes++
		c.nbrs = c.Grid.AppendNeighbors(c.nbrs[:0], i, gridgraph.Conn8)
		for _, n := range c.nbrs {
			cells[n]++
			if cells[n] == threshold+1 {
				c.stack = append(c.stack, n)
			}
		}
	}
	for i, v := range cells {
		if v > threshold {
			cells[i] = 0
		}
	}
	return flashes
}

// Flashes runs n steps and returns the total number of flashes.
func (c *Cavern) Flashes(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += c.Step()
	}
	return total
}

// FirstSync steps until every octopus flashes together and returns that
// step's 1-based number counted from the current state.
func (c *Cavern) FirstSync(limit int) (int, error) {
	for step := 1; step <= limit; step++ {
		if c.Step() == c.Grid.Len() {
			return step, nil
		}
	}
	return 0, ErrNoSync
}
