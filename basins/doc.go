// Package basins analyses a smoke-flow heightmap.
//
// Heights are digits 0..9 on a gridgraph.Grid. A low point is strictly lower
// than each of its orthogonal neighbours. A basin is every cell that flows
// into one low point; height 9 never belongs to a basin and separates them.
//
// Basin sizes come from a bfs.Flood from each low point that refuses to step
// onto a 9. The floods are checked against gridgraph.Regions so that every
// basin has exactly one low point.
package basins
