// Package vents counts points where hydrothermal vent lines overlap.
//
// Lines are horizontal, vertical, or exact 45° diagonals given as
// "x1,y1 -> x2,y2" with both endpoints inclusive.
package vents

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/internal/input"
)

// ErrBadLine wraps a line that does not match "x1,y1 -> x2,y2".
var ErrBadLine = errors.New("vents: malformed line")

// Point is a grid coordinate.
type Point struct{ X, Y int }

// Segment runs from Start to End inclusive.
type Segment struct{ Start, End Point }

// Horizontal reports whether the segment keeps a constant Y.
func (s Segment) Horizontal() bool { return s.Start.Y == s.End.Y }

// Vertical reports whether the segment keeps a constant X.
func (s Segment) Vertical() bool { return s.Start.X == s.End.X }

// Diagonal reports whether the segment runs at exactly 45°.
func (s Segment) Diagonal() bool {
	return input.Abs(s.End.X-s.Start.X) == input.Abs(s.End.Y-s.Start.Y) && !s.Vertical()
}

func parsePoint(s string) (Point, error) {
	xy, err := input.Ints[int](s, ",")
	if err != nil || len(xy) != 2 {
		return Point{}, fmt.Errorf("%w: point %q", ErrBadLine, s)
	}
	return Point{X: xy[0], Y: xy[1]}, nil
}

// Parse reads one segment per line.
func Parse(text string) ([]Segment, error) {
	var segs []Segment
	lines, err := input.SplitLines(text)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		a, b, ok := strings.Cut(line, "->")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadLine, line)
		}
		start, err := parsePoint(a)
		if err != nil {
			return nil, err
		}
		end, err := parsePoint(b)
		if err != nil {
			return nil, err
		}
		segs = append(segs, Segment{Start: start, End: end})
	}
	return segs, nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Overlaps counts points covered by at least threshold segments. Diagonal
// segments are drawn only when diagonals is true; other slopes are ignored.
func Overlaps(segs []Segment, threshold int, diagonals bool) int {
	cover := make(map[Point]int)
	for _, s := range segs {
		if !s.Horizontal() && !s.Vertical() && !(diagonals && s.Diagonal()) {
			continue
		}
		dx, dy := sign(s.End.X-s.Start.X), sign(s.End.Y-s.Start.Y)
		steps := max(input.Abs(s.End.X-s.Start.X), input.Abs(s.End.Y-s.Start.Y))
		p := s.Start
		for i := 0; i <= steps; i++ {
			cover[p]++
			p.X += dx
			p.Y += dy
		}
	}
	n := 0
	for _, c := range cover {
		if c >= threshold {
			n++
		}
	}
	return n
}
