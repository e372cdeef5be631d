package gridgraph

import (
	"fmt"
	"strings"
)

// New returns a zero-filled width×height grid.
// Returns ErrEmptyGrid if either dimension is not positive.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{Width: width, Height: height, Cells: make([]int, width*height)}, nil
}

// FromDigits parses newline-separated rows of decimal digits, one cell per digit.
// Blank trailing lines are ignored; a carriage return before each newline is tolerated.
func FromDigits(text string) (*Grid, error) {
	return parse(text, func(r rune) (int, bool) {
		if r < '0' || r > '9' {
			return 0, false
		}
		return int(r - '0'), true
	})
}

// FromRunes parses newline-separated rows where each rune is translated
// through values. Any rune missing from values yields ErrBadCell.
func FromRunes(text string, values map[rune]int) (*Grid, error) {
	return parse(text, func(r rune) (int, bool) {
		v, ok := values[r]
		return v, ok
	})
}

func parse(text string, cell func(rune) (int, bool)) (*Grid, error) {
	rows := strings.Split(strings.TrimRight(text, "\r\n"), "\n")
	if len(rows) == 0 || strings.TrimSpace(rows[0]) == "" {
		return nil, ErrEmptyGrid
	}
	w := len([]rune(strings.TrimRight(rows[0], "\r")))
	g := &Grid{Width: w, Height: len(rows), Cells: make([]int, 0, w*len(rows))}
	for y, row := range rows {
		row = strings.TrimRight(row, "\r")
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(runes), w)
		}
		for x, r := range runes {
			v, ok := cell(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, r, x, y)
			}
			g.Cells = append(g.Cells, v)
		}
	}
	return g, nil
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.Cells) }

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the value at (x,y). It panics if (x,y) is out of bounds.
func (g *Grid) At(x, y int) int {
	return g.Cells[g.Index(x, y)]
}

// Set stores v at (x,y).
func (g *Grid) Set(x, y, v int) {
	g.Cells[g.Index(x, y)] = v
}

// Clone returns a deep copy, so simulations can run on a private board.
func (g *Grid) Clone() *Grid {
	cells := make([]int, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// Neighbors returns the in-bounds neighbours of idx under conn.
func (g *Grid) Neighbors(idx int, conn Connectivity) []int {
	return g.AppendNeighbors(make([]int, 0, 8), idx, conn)
}

// AppendNeighbors appends the in-bounds neighbours of idx to dst and returns it.
// Hot loops reuse dst to avoid an allocation per cell.
func (g *Grid) AppendNeighbors(dst []int, idx int, conn Connectivity) []int {
	n := 4
	if conn == Conn8 {
		n = 8
	}
	x, y := g.Coordinate(idx)
	for _, d := range offsets[:n] {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			dst = append(dst, g.Index(nx, ny))
		}
	}
	return dst
}

// String renders the grid one row per line. Values 0..9 print as digits,
// anything else as '#'.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			v := g.At(x, y)
			if v >= 0 && v <= 9 {
				b.WriteByte(byte('0' + v))
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
