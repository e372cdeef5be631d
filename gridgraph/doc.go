// Package gridgraph treats a rectangular grid of small integers as a graph
// whose vertices are flat, row-major cell indices.
//
// What:
//
//   - Grid stores Width, Height and a flat []int indexed by y*Width+x.
//   - Neighbors enumerates orthogonal (Conn4) or orthogonal+diagonal (Conn8)
//     cells, filtered to the grid bounds.
//   - Regions finds connected components of "passable" cells.
//   - Tile expands a grid into an n×n mosaic of transformed copies.
//
// Why:
//
//   - A flat slice keeps neighbour computation to index arithmetic and avoids
//     pointer chasing; every grid puzzle in this module (heightmaps, octopus
//     energy levels, chiton risk, sea cucumber herds) shares it.
//
// Neighbour order:
//
//	Neighbors always yields offsets in the order
//	left, right, up, down, then (Conn8 only) up-left, down-left, down-right, up-right.
//	Simulations that mutate cells while iterating rely on that order being stable.
//
// Complexity:
//
//   - Index, Coordinate, InBounds: O(1).
//   - Neighbors:                   O(d), d = 4 or 8.
//   - Regions:                     O(W×H×d) time, O(W×H) memory.
//   - Tile:                        O(n²×W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell:        a character has no cell value.
package gridgraph
