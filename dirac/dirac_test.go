package dirac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/dirac"
)

const example = `Player 1 starting position: 4
Player 2 starting position: 8
`

func TestPractice_Example(t *testing.T) {
	s, err := dirac.Parse(example)
	require.NoError(t, err)
	assert.Equal(t, dirac.Start{4, 8}, s)
	assert.Equal(t, 739785, dirac.Practice(s))
}

func TestWins_Example(t *testing.T) {
	w, err := dirac.Wins(dirac.Start{4, 8})
	require.NoError(t, err)
	assert.Equal(t, [2]int64{444356092776315, 341960390180808}, w)

	best, err := dirac.MostWins(dirac.Start{4, 8})
	require.NoError(t, err)
	assert.Equal(t, int64(444356092776315), best)
}

func TestWins_CacheEquivalence(t *testing.T) {
	for _, target := range []int{1, 4, 8} {
		for _, s := range []dirac.Start{{4, 8}, {1, 10}, {7, 7}} {
			cached, err := dirac.Wins(s, dirac.WithTarget(target))
			require.NoError(t, err)
			plain, err := dirac.Wins(s, dirac.WithTarget(target), dirac.WithCache(false))
			require.NoError(t, err)
			assert.Equal(t, cached, plain, "start %v target %d", s, target)
		}
	}
}

func TestWins_TargetOne(t *testing.T) {
	// Any move scores at least 1, so player one wins all 27 first-turn universes.
	w, err := dirac.Wins(dirac.Start{3, 3}, dirac.WithTarget(1))
	require.NoError(t, err)
	assert.Equal(t, [2]int64{27, 0}, w)

	_, err = dirac.Wins(dirac.Start{3, 3}, dirac.WithTarget(0))
	assert.ErrorIs(t, err, dirac.ErrOptionViolation)
}

func TestParse_Errors(t *testing.T) {
	for _, text := range []string{
		"Player 1 starting position: 4\n",
		"Player 1 starting position: 11\nPlayer 2 starting position: 8\n",
		"Player 1 at 4\nPlayer 2 at 8\n",
	} {
		_, err := dirac.Parse(text)
		assert.ErrorIs(t, err, dirac.ErrBadStart, text)
	}
}
