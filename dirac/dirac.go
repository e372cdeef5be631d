package dirac

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/internal/input"
)

const (
	// TrackSize is the number of spaces on the board.
	TrackSize = 10
	// DeterministicTarget ends the practice game.
	DeterministicTarget = 1000
	// DiracTarget ends a Dirac game unless overridden by WithTarget.
	DiracTarget = 21

	dieSides = 100
)

var (
	// ErrBadStart indicates a missing or out-of-range starting position.
	ErrBadStart = errors.New("dirac: malformed starting position")
	// ErrOptionViolation reports an invalid option value.
	ErrOptionViolation = errors.New("dirac: invalid option")
)

// Start holds both players' starting spaces, 1..TrackSize.
type Start [2]int

// Parse reads "Player N starting position: P" lines.
func Parse(text string) (Start, error) {
	var s Start
	n := 0
	lines, err := input.SplitLines(text)
	if err != nil {
		return s, err
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		_, pos, ok := strings.Cut(line, "starting position:")
		if !ok || n == len(s) {
			return s, fmt.Errorf("%w: %q", ErrBadStart, line)
		}
		p, err := input.Int[int](pos)
		if err != nil || p < 1 || p > TrackSize {
			return s, fmt.Errorf("%w: %q", ErrBadStart, line)
		}
		s[n] = p
		n++
	}
	if n != len(s) {
		return s, fmt.Errorf("%w: want 2 players, got %d", ErrBadStart, n)
	}
	return s, nil
}

func advance(pos, by int) int {
	return (pos-1+by)%TrackSize + 1
}

// Practice plays the deterministic game and returns the losing score
// multiplied by the number of rolls.
func Practice(s Start) int {
	pos := s
	var score [2]int
	rolls := 0
	for p := 0; ; p ^= 1 {
		move := 0
		for i := 0; i < 3; i++ {
			move += rolls%dieSides + 1
			rolls++
		}
		pos[p] = advance(pos[p], move)
		score[p] += pos[p]
		if score[p] >= DeterministicTarget {
			return score[p^1] * rolls
		}
	}
}
