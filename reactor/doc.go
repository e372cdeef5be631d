// Package reactor tracks which cubes of a reactor core are on after a
// sequence of cuboid reboot steps.
//
// The initialisation region, -50..50 on every axis, is small enough to count
// voxel by voxel. The full core is not: Count keeps a list of signed cuboids
// instead. Each new step cancels its overlap with every recorded cuboid by
// inserting the intersection with the opposite sign, and an "on" step then
// adds itself with a positive sign. The lit volume is the signed sum of
// volumes.
package reactor
