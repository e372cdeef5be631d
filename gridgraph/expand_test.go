package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/gridgraph"
)

func TestTile_Identity(t *testing.T) {
	g, err := gridgraph.FromDigits("12\n34")
	require.NoError(t, err)

	out, err := g.Tile(2, nil)
	require.NoError(t, err)
	assert.Equal(t, "1212\n3434\n1212\n3434\n", out.String())
}

func TestTile_Transform(t *testing.T) {
	g, err := gridgraph.FromDigits("8")
	require.NoError(t, err)

	out, err := g.Tile(3, func(v, tx, ty int) int { return (v+tx+ty-1)%9 + 1 })
	require.NoError(t, err)
	assert.Equal(t, "891\n912\n123\n", out.String())
}

func TestTile_BadFactor(t *testing.T) {
	g, _ := gridgraph.New(1, 1)
	_, err := g.Tile(0, nil)
	assert.ErrorIs(t, err, gridgraph.ErrBadTile)
}
