// Package bfs provides breadth-first search over a gridgraph.Grid, returning
// unit-step distances, parent links and visit order for grid cells.
//
// What
//
//   - Explore cells in non-decreasing step count from a start cell.
//   - Returns a Result containing:
//   - Order:  visit sequence (row-major indices)
//   - Depth:  map from cell → steps from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Supports hooks at three stages (OnEnqueue, OnDequeue, OnVisit).
//   - Prunes moves with WithFilterNeighbor, e.g. to stop at basin walls.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Neighbours are enqueued in gridgraph's fixed offset order, so the visit
//	sequence is fully reproducible.
//
// Complexity (N = W×H cells, d = 4 or 8)
//
//   - Time:   O(N·d)
//   - Memory: O(N)
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrStartOutOfRange  if the start index is not a cell of the grid.
//   - ErrOptionViolation  if an invalid Option was supplied.
//   - Wrapped hook errors from OnVisit, or the context error on cancellation.
package bfs
