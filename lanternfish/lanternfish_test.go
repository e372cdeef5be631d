package lanternfish_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/lanternfish"
)

func TestCount_Example(t *testing.T) {
	s, err := lanternfish.Parse("3,4,3,1,2\n")
	require.NoError(t, err)

	assert.Equal(t, uint64(5), s.Count(0))
	assert.Equal(t, uint64(26), s.Count(18))
	assert.Equal(t, uint64(5934), s.Count(80))
	assert.Equal(t, uint64(26984457539), s.Count(256))
}

// TestStep_MatchesIndividuals simulates each fish directly for a few weeks.
func TestStep_MatchesIndividuals(t *testing.T) {
	fish := []int{3, 4, 3, 1, 2}
	s, err := lanternfish.Parse("3,4,3,1,2")
	require.NoError(t, err)

	for day := 1; day <= 30; day++ {
		n := len(fish)
		for i := 0; i < n; i++ {
			if fish[i] == 0 {
				fish[i] = lanternfish.ResetTimer
				fish = append(fish, lanternfish.NewbornTimer)
			} else {
				fish[i]--
			}
		}
		s = s.Step()
		assert.Equal(t, uint64(len(fish)), s.Count(0), "day %d", day)
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := lanternfish.Parse("3,9")
	assert.ErrorIs(t, err, lanternfish.ErrBadTimer)
	_, err = lanternfish.Parse("3,,4")
	assert.Error(t, err)
}
