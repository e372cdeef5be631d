package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/gridgraph"
)

func notNine(v int) bool { return v != 9 }

// TestRegions_Barrier splits a grid along a wall of 9s.
//
//	1 9 2
//	1 9 2
//	9 9 2
func TestRegions_Barrier(t *testing.T) {
	g, err := gridgraph.FromDigits("192\n192\n992")
	require.NoError(t, err)

	regions := g.Regions(gridgraph.Conn4, notNine)
	require.Len(t, regions, 2)
	assert.Equal(t, []int{0, 3}, regions[0])
	assert.ElementsMatch(t, []int{2, 5, 8}, regions[1])
}

// TestRegions_Diagonal shows that Conn8 joins cells touching only at corners.
func TestRegions_Diagonal(t *testing.T) {
	g, err := gridgraph.FromDigits("19991\n91919\n99199\n91919\n19991")
	require.NoError(t, err)

	assert.Len(t, g.Regions(gridgraph.Conn4, notNine), 9)

	r8 := g.Regions(gridgraph.Conn8, notNine)
	require.Len(t, r8, 1)
	assert.Len(t, r8[0], 9)
}

func TestRegions_Sizes(t *testing.T) {
	g, err := gridgraph.FromDigits("2199943210\n3987894921\n9856789892\n8767896789\n9899965678")
	require.NoError(t, err)

	var sizes []int
	for _, r := range g.Regions(gridgraph.Conn4, notNine) {
		sizes = append(sizes, len(r))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	assert.Equal(t, []int{14, 9, 9, 3}, sizes)
}
