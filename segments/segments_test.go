package segments_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/segments"
)

const single = "acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | cdfeb fcadb cdfeb cdbaf"

// canonical wires for digits 0..9 on an unscrambled display.
var canonical = [10]string{"abcefg", "cf", "acdeg", "acdfg", "bcdf", "abdfg", "abdefg", "acf", "abcdefg", "abcdfg"}

func TestDecode_Single(t *testing.T) {
	e, err := segments.ParseEntry(single)
	require.NoError(t, err)

	v, err := e.Decode()
	require.NoError(t, err)
	assert.Equal(t, 5353, v)
	assert.Zero(t, segments.CountUnique([]segments.Entry{e}))
}

// scramble renders digits through the wire permutation perm.
func scramble(rng *rand.Rand, perm []byte, out []int) string {
	remap := func(s string) string {
		b := []byte(s)
		for i, c := range b {
			b[i] = perm[c-'a']
		}
		rng.Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })
		return string(b)
	}
	pats := make([]string, 10)
	for i, s := range canonical {
		pats[i] = remap(s)
	}
	rng.Shuffle(len(pats), func(i, j int) { pats[i], pats[j] = pats[j], pats[i] })
	outs := make([]string, len(out))
	for i, d := range out {
		outs[i] = remap(canonical[d])
	}
	return strings.Join(pats, " ") + " | " + strings.Join(outs, " ")
}

func TestDecode_RandomPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(2021))
	var lines []string
	wantSum, wantUnique := 0, 0
	for n := 0; n < 200; n++ {
		perm := []byte("abcdefg")
		rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		out := make([]int, 4)
		value := 0
		for i := range out {
			out[i] = rng.Intn(10)
			value = value*10 + out[i]
			switch out[i] {
			case 1, 4, 7, 8:
				wantUnique++
			}
		}
		wantSum += value
		lines = append(lines, scramble(rng, perm, out))
	}

	entries, err := segments.Parse(strings.Join(lines, "\n"))
	require.NoError(t, err)
	require.Len(t, entries, 200)

	assert.Equal(t, wantUnique, segments.CountUnique(entries))
	sum, err := segments.SumOutputs(entries)
	require.NoError(t, err)
	assert.Equal(t, wantSum, sum)
}

func TestDecode_Errors(t *testing.T) {
	_, err := segments.ParseEntry("ab cd | ef")
	assert.ErrorIs(t, err, segments.ErrBadEntry)
	_, err = segments.ParseEntry("ab | xy")
	assert.ErrorIs(t, err, segments.ErrBadEntry)

	e, err := segments.ParseEntry("ab ab ab ab ab ab ab ab ab ab | ab ab ab ab")
	require.NoError(t, err)
	_, err = e.Decode()
	assert.ErrorIs(t, err, segments.ErrUndecodable)
}
