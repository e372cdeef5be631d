// Package dijkstra finds lowest-cost paths across a gridgraph.Grid where
// entering a cell costs that cell's value.
//
// Overview:
//
//   - The start cell is free; every subsequent cell on the path adds its value.
//   - A binary min-heap orders frontier entries by accumulated cost, with the
//     cell index as a stable secondary key.
//   - Lazy decrease-key: improved entries are pushed again and stale ones are
//     skipped when popped with a cost above the best known.
//   - A neighbour is relaxed only on strict improvement.
//
// Complexity (N = W×H cells, d = 4 or 8):
//
//   - Time:  O(N·d·log N)
//   - Space: O(N) for distances, O(N·d) worst case for heap entries.
//
// Errors (sentinel):
//
//   - ErrNilGrid          grid pointer is nil.
//   - ErrOutOfRange       Source or Target is not a cell of the grid.
//   - ErrNegativeWeight   a cell holds a negative value.
//   - ErrNoPath           Target is unreachable (or beyond MaxDistance).
//   - ErrBadMaxDistance   WithMaxDistance received a negative value (panics).
//
// Example usage:
//
//	cost, err := dijkstra.LowestCost(g,
//	    dijkstra.Source(0),
//	    dijkstra.Target(g.Len()-1),
//	)
package dijkstra
