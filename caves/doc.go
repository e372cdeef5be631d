// Package caves counts routes through a cave system from "start" to "end".
//
// Caves named in upper case are big and may be entered any number of times.
// Lower-case caves are small and may be entered once, or, when a single
// repeat is allowed, one small cave per route may be entered twice. "start"
// is never re-entered and "end" finishes a route.
//
// Cave names are interned to dense ids so the set of visited small caves is a
// bitmask. The path count from a cave depends only on (cave, visited mask,
// repeat still available), and that triple is the memo key. The cache can be
// switched off with WithCache(false); results are identical either way.
package caves
