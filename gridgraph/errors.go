package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCell indicates a character that cannot be converted to a cell value.
	ErrBadCell = errors.New("gridgraph: unrecognised cell character")
	// ErrBadTile indicates a non-positive tiling factor.
	ErrBadTile = errors.New("gridgraph: tile factor must be positive")
)
