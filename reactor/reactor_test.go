package reactor_test

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/reactor"
)

const small = `on x=10..12,y=10..12,z=10..12
on x=11..13,y=11..13,z=11..13
off x=9..11,y=9..11,z=9..11
on x=10..10,y=10..10,z=10..10
`

func TestSmallExample(t *testing.T) {
	steps, err := reactor.Parse(small)
	require.NoError(t, err)
	require.Len(t, steps, 4)

	assert.Equal(t, 39, reactor.CountInit(steps))
	assert.Equal(t, int64(39), reactor.Count(steps))
}

func readSteps(t *testing.T, name string) []reactor.Step {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	steps, err := reactor.Parse(string(data))
	require.NoError(t, err)
	return steps
}

func TestLargerExamples(t *testing.T) {
	first := readSteps(t, "example1.txt")
	require.Len(t, first, 22)
	assert.Equal(t, 590784, reactor.CountInit(first))

	second := readSteps(t, "example2.txt")
	require.Len(t, second, 60)
	assert.Equal(t, 474140, reactor.CountInit(second))
	assert.Equal(t, int64(2758514936282235), reactor.Count(second))
}

func TestCountInit_IgnoresOutside(t *testing.T) {
	steps, err := reactor.Parse("on x=-54112..-39298,y=-85059..-49293,z=-27449..7877\non x=49..60,y=0..0,z=0..0\n")
	require.NoError(t, err)
	assert.Equal(t, 2, reactor.CountInit(steps))
	assert.Equal(t, int64(14815*35767*35327+12), reactor.Count(steps))
}

// TestCount_MatchesVoxels compares inclusion–exclusion with the voxel count
// on random steps that stay inside the initialisation region.
func TestCount_MatchesVoxels(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	span := func() (int, int) {
		a := rng.Intn(41) - 20
		return a, a + rng.Intn(15)
	}
	for trial := 0; trial < 20; trial++ {
		var b strings.Builder
		for i := 0; i < 25; i++ {
			state := "on"
			if rng.Intn(3) == 0 {
				state = "off"
			}
			x1, x2 := span()
			y1, y2 := span()
			z1, z2 := span()
			fmt.Fprintf(&b, "%s x=%d..%d,y=%d..%d,z=%d..%d\n", state, x1, x2, y1, y2, z1, z2)
		}
		steps, err := reactor.Parse(b.String())
		require.NoError(t, err)
		assert.Equal(t, int64(reactor.CountInit(steps)), reactor.Count(steps), "trial %d", trial)
	}
}

func TestIntersect(t *testing.T) {
	a := reactor.Cuboid{X1: 0, X2: 4, Y1: 0, Y2: 4, Z1: 0, Z2: 4}
	b := reactor.Cuboid{X1: 4, X2: 8, Y1: -2, Y2: 1, Z1: 3, Z2: 3}
	got, ok := a.Intersect(b)
	require.True(t, ok)
	assert.Equal(t, reactor.Cuboid{X1: 4, X2: 4, Y1: 0, Y2: 1, Z1: 3, Z2: 3}, got)
	assert.Equal(t, int64(2), got.Volume())

	_, ok = a.Intersect(reactor.Cuboid{X1: 5, X2: 6, Y1: 0, Y2: 0, Z1: 0, Z2: 0})
	assert.False(t, ok)
}

func TestParse_Errors(t *testing.T) {
	_, err := reactor.Parse("toggle x=1..2,y=1..2,z=1..2")
	assert.ErrorIs(t, err, reactor.ErrBadStep)
	_, err = reactor.Parse("on x=1..2,y=1..2")
	assert.ErrorIs(t, err, reactor.ErrBadStep)
}
