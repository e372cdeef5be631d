package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: left, right, up, down.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// offsets lists neighbour deltas; Conn4 uses the first four entries.
var offsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, 1}, {1, -1},
}

// Grid is a rectangular grid of integer cells stored row-major.
// Cells[y*Width+x] holds the value at (x, y).
type Grid struct {
	Width, Height int
	Cells         []int
}
