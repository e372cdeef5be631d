package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/bingo"
	"github.com/katalvlaran/aoc2021/internal/puzzle"
	"github.com/katalvlaran/aoc2021/syntax"
)

var examples = map[int]struct {
	text         string
	part1, part2 int64
}{
	1:  {"199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n", 7, 5},
	2:  {"forward 5\ndown 5\nforward 8\nup 3\ndown 8\nforward 2\n", 150, 900},
	6:  {"3,4,3,1,2\n", 5934, 26984457539},
	7:  {"16,1,2,0,4,2,7,1,2,14\n", 37, 168},
	17: {"target area: x=20..30, y=-10..-5\n", 45, 112},
	21: {"Player 1 starting position: 4\nPlayer 2 starting position: 8\n", 739785, 444356092776315},
}

func TestRegisterAll(t *testing.T) {
	reg := puzzle.NewRegistry()
	require.NoError(t, registerAll(reg))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 17, 21, 22, 24, 25}, reg.Days())

	assert.ErrorIs(t, registerAll(reg), puzzle.ErrDuplicateDay)
}

func TestSolvers_Examples(t *testing.T) {
	reg := puzzle.NewRegistry()
	require.NoError(t, registerAll(reg))
	for day, ex := range examples {
		e, err := reg.Lookup(day)
		require.NoError(t, err)
		ans, err := e.Solve([]byte(ex.text))
		require.NoError(t, err, "day %d", day)
		assert.Equal(t, ex.part1, ans.Part1, "day %d part 1", day)
		assert.Equal(t, ex.part2, ans.Part2, "day %d part 2", day)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.InputDir = dir
	cfg.Workers = 2
	cfg.Days = []int{7, 6, 13}
	cfg.Render = true
	writeFile(t, dir, "day06.txt", examples[6].text)
	writeFile(t, dir, "day07.txt", examples[7].text)
	writeFile(t, dir, "day13.txt", "0,0\n1,0\n0,1\n1,1\n\nfold along x=3\n")

	reg := puzzle.NewRegistry()
	require.NoError(t, registerAll(reg))

	var logs, out bytes.Buffer
	logger := zerolog.New(zerolog.SyncWriter(&logs))
	require.NoError(t, run(context.Background(), cfg, reg, logger, &out))

	var got []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		if m["message"] == "solved" {
			got = append(got, m)
		}
	}
	require.Len(t, got, 3)
	// Logged in configured order regardless of completion order.
	assert.EqualValues(t, 7, got[0]["day"])
	assert.EqualValues(t, 37, got[0]["part1"])
	assert.EqualValues(t, 6, got[1]["day"])
	assert.EqualValues(t, 5934, got[1]["part1"])
	assert.EqualValues(t, 13, got[2]["day"])

	assert.Equal(t, "day 13:\n##\n##\n", out.String())
}

func TestRun_Failures(t *testing.T) {
	reg := puzzle.NewRegistry()
	require.NoError(t, registerAll(reg))
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.InputDir = dir

	cfg.Days = []int{6}
	err := run(context.Background(), cfg, reg, zerolog.Nop(), &bytes.Buffer{})
	assert.Error(t, err, "missing input file")

	writeFile(t, dir, "day06.txt", "3,x\n")
	err = run(context.Background(), cfg, reg, zerolog.Nop(), &bytes.Buffer{})
	assert.ErrorContains(t, err, "day 6 (lanternfish)")

	cfg.Days = []int{4}
	writeFile(t, dir, "day04.txt", "1,2,3\n\n"+
		"10 11 12 13 14\n15 16 17 18 19\n20 21 22 23 24\n25 26 27 28 29\n30 31 32 33 34\n")
	err = run(context.Background(), cfg, reg, zerolog.Nop(), &bytes.Buffer{})
	assert.ErrorIs(t, err, bingo.ErrNoWinner)

	cfg.Days = []int{10}
	writeFile(t, dir, "day10.txt", "()\n")
	err = run(context.Background(), cfg, reg, zerolog.Nop(), &bytes.Buffer{})
	assert.ErrorIs(t, err, syntax.ErrNoIncomplete)

	cfg.Days = []int{16}
	err = run(context.Background(), cfg, reg, zerolog.Nop(), &bytes.Buffer{})
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
}
