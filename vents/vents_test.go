package vents_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/vents"
)

const example = `0,9 -> 5,9
8,0 -> 0,8
9,4 -> 3,4
2,2 -> 2,1
7,0 -> 7,4
6,4 -> 2,0
0,9 -> 2,9
3,4 -> 1,4
0,0 -> 8,8
5,5 -> 8,2
`

func TestOverlaps_Example(t *testing.T) {
	segs, err := vents.Parse(example)
	require.NoError(t, err)
	require.Len(t, segs, 10)

	assert.Equal(t, 5, vents.Overlaps(segs, 2, false))
	assert.Equal(t, 12, vents.Overlaps(segs, 2, true))
}

func TestSegment_Kinds(t *testing.T) {
	s := vents.Segment{Start: vents.Point{X: 1, Y: 1}, End: vents.Point{X: 3, Y: 3}}
	assert.True(t, s.Diagonal())
	assert.False(t, s.Horizontal())

	skew := vents.Segment{Start: vents.Point{X: 0, Y: 0}, End: vents.Point{X: 2, Y: 1}}
	assert.False(t, skew.Diagonal())
	assert.Zero(t, vents.Overlaps([]vents.Segment{skew, skew}, 2, true))

	dot := vents.Segment{Start: vents.Point{X: 4, Y: 4}, End: vents.Point{X: 4, Y: 4}}
	assert.False(t, dot.Diagonal())
	assert.Equal(t, 1, vents.Overlaps([]vents.Segment{dot}, 1, false))
}

func TestParse_Errors(t *testing.T) {
	for _, line := range []string{"0,9 5,9", "0,9 -> 5", "a,b -> 1,2"} {
		_, err := vents.Parse(line)
		assert.ErrorIs(t, err, vents.ErrBadLine, line)
	}
}
