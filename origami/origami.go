// Package origami folds transparent paper marked with dots.
package origami

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/internal/input"
)

var (
	// ErrBadDot indicates a dot line that is not "x,y".
	ErrBadDot = errors.New("origami: malformed dot")
	// ErrBadFold indicates a line that is not "fold along x=N" or "fold along y=N".
	ErrBadFold = errors.New("origami: malformed fold")
)

// Dot is a marked position; X grows right, Y grows down.
type Dot struct{ X, Y int }

// Axis names the fold line orientation.
type Axis byte

const (
	AxisX Axis = 'x'
	AxisY Axis = 'y'
)

// Fold is one fold instruction.
type Fold struct {
	Axis Axis
	Line int
}

// Sheet is a set of dots plus pending folds.
type Sheet struct {
	Dots  map[Dot]struct{}
	Folds []Fold
}

const foldPrefix = "fold along "

// Parse reads dots, a blank line, then fold instructions.
func Parse(text string) (*Sheet, error) {
	s := &Sheet{Dots: make(map[Dot]struct{})}
	lines, err := input.SplitLines(text)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, foldPrefix):
			axis, n, ok := strings.Cut(strings.TrimPrefix(line, foldPrefix), "=")
			if !ok || (axis != "x" && axis != "y") {
				return nil, fmt.Errorf("%w: %q", ErrBadFold, line)
			}
			v, err := input.Int[int](n)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadFold, err)
			}
			s.Folds = append(s.Folds, Fold{Axis: Axis(axis[0]), Line: v})
		default:
			xy, err := input.Ints[int](line, ",")
			if err != nil || len(xy) != 2 {
				return nil, fmt.Errorf("%w: %q", ErrBadDot, line)
			}
			s.Dots[Dot{X: xy[0], Y: xy[1]}] = struct{}{}
		}
	}
	return s, nil
}

// Apply folds dots across f, returning the new dot set. Dots beyond the line
// are mirrored onto the near half; dots on the line vanish.
func Apply(dots map[Dot]struct{}, f Fold) map[Dot]struct{} {
	out := make(map[Dot]struct{}, len(dots))
	for d := range dots {
		c := &d.Y
		if f.Axis == AxisX {
			c = &d.X
		}
		switch {
		case *c == f.Line:
			continue
		case *c > f.Line:
			*c = 2*f.Line - *c
		}
		out[d] = struct{}{}
	}
	return out
}

// VisibleAfterFirst counts dots after applying only the first fold.
func (s *Sheet) VisibleAfterFirst() int {
	if len(s.Folds) == 0 {
		return len(s.Dots)
	}
	return len(Apply(s.Dots, s.Folds[0]))
}

// FoldAll applies every fold in order.
func (s *Sheet) FoldAll() map[Dot]struct{} {
	dots := s.Dots
	for _, f := range s.Folds {
		dots = Apply(dots, f)
	}
	return dots
}

// Render draws dots as '#' on '.' within their bounding box. The box starts
// at the origin, or further up and left when a fold mirrored dots past it.
// Rows are joined by newlines with no trailing newline.
func Render(dots map[Dot]struct{}) string {
	var x0, y0, x1, y1 int
	for d := range dots {
		x0, y0 = min(x0, d.X), min(y0, d.Y)
		x1, y1 = max(x1, d.X+1), max(y1, d.Y+1)
	}
	rows := make([]string, y1-y0)
	for r := range rows {
		row := bytes.Repeat([]byte{'.'}, x1-x0)
		for c := range row {
			if _, ok := dots[Dot{X: x0 + c, Y: y0 + r}]; ok {
				row[c] = '#'
			}
		}
		rows[r] = string(row)
	}
	return strings.Join(rows, "\n")
}
