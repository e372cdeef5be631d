// Package dirac plays Dirac Dice on a circular track of ten spaces.
//
// Two players alternate turns: roll three times, advance by the sum, and add
// the landing space to their score. With a deterministic 100-sided die the
// game ends at 1000 points. With the three-sided Dirac die every roll splits
// the universe, so winning universes are counted by a memoised recursion over
// (positions, scores, player to move). Only 7 distinct three-roll sums exist,
// weighted 1,3,6,7,6,3,1 for sums 3..9.
package dirac
