package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/aoc2021/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrOutOfRange indicates a Source or Target index outside the grid.
	ErrOutOfRange = errors.New("dijkstra: cell index out of range")

	// ErrNegativeWeight indicates that a cell holds a negative cost.
	ErrNegativeWeight = errors.New("dijkstra: negative cell cost encountered")

	// ErrNoPath indicates that the target cannot be reached.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable marks a cell whose distance was never set.
const Unreachable int64 = math.MaxInt64

// Options configures the search.
//
// Source      – starting cell index (default 0, the top-left corner).
// Target      – goal cell index; -1 (default) means the bottom-right corner.
// Conn        – Conn4 (default) or Conn8 moves.
// MaxDistance – cells whose cost would exceed this are not explored.
type Options struct {
	Source      int
	Target      int
	Conn        gridgraph.Connectivity
	MaxDistance int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell.
func Source(idx int) Option {
	return func(o *Options) { o.Source = idx }
}

// Target sets the goal cell.
func Target(idx int) Option {
	return func(o *Options) { o.Target = idx }
}

// WithConnectivity selects 4- or 8-neighbour moves.
func WithConnectivity(c gridgraph.Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithMaxDistance sets a maximum cost threshold.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns corner-to-corner, Conn4, uncapped options.
func DefaultOptions() Options {
	return Options{
		Source:      0,
		Target:      -1,
		Conn:        gridgraph.Conn4,
		MaxDistance: math.MaxInt64,
	}
}
