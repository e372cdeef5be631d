package octopus_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/octopus"
)

const example = `5483143223
2745854711
5264556173
6141336146
6357385478
4167524645
2176841721
6882881134
4846848554
5283751526
`

func TestFlashes_Example(t *testing.T) {
	c, err := octopus.Parse(example)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Step())
	assert.Equal(t, 35, c.Step())

	c, err = octopus.Parse(example)
	require.NoError(t, err)
	assert.Equal(t, 204, c.Flashes(10))
	assert.Equal(t, 1656-204, c.Flashes(90))
}

func TestFirstSync_Example(t *testing.T) {
	c, err := octopus.Parse(example)
	require.NoError(t, err)
	step, err := c.FirstSync(1000)
	require.NoError(t, err)
	assert.Equal(t, 195, step)

	for _, v := range c.Grid.Cells {
		assert.Zero(t, v)
	}
}

func TestStep_Cascade(t *testing.T) {
	c, err := octopus.Parse("11111\n19991\n19191\n19991\n11111\n")
	require.NoError(t, err)

	assert.Equal(t, 9, c.Step())
	want, err := octopus.Parse("34543\n40004\n50005\n40004\n34543\n")
	require.NoError(t, err)
	if diff := cmp.Diff(want.Grid.Cells, c.Grid.Cells); diff != "" {
		t.Errorf("after step 1 (-want +got):\n%s", diff)
	}

	assert.Equal(t, 0, c.Step())
	want, err = octopus.Parse("45654\n51115\n61116\n51115\n45654\n")
	require.NoError(t, err)
	if diff := cmp.Diff(want.Grid.Cells, c.Grid.Cells); diff != "" {
		t.Errorf("after step 2 (-want +got):\n%s", diff)
	}
}

func TestFirstSync_Limit(t *testing.T) {
	c, err := octopus.Parse(example)
	require.NoError(t, err)
	_, err = c.FirstSync(10)
	assert.ErrorIs(t, err, octopus.ErrNoSync)
}
