// Package lanternfish models an exponentially growing school of fish by
// counting fish per timer value rather than tracking individuals.
package lanternfish

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2021/internal/input"
)

const (
	// ResetTimer is the timer a fish returns to after spawning.
	ResetTimer = 6
	// NewbornTimer is the timer of a freshly spawned fish.
	NewbornTimer = 8
)

// ErrBadTimer indicates a timer outside 0..NewbornTimer.
var ErrBadTimer = errors.New("lanternfish: timer out of range")

// School counts fish by internal timer.
type School [NewbornTimer + 1]uint64

// Parse reads comma-separated timers.
func Parse(text string) (School, error) {
	var s School
	timers, err := input.Ints[int](text, ",")
	if err != nil {
		return s, fmt.Errorf("lanternfish: %w", err)
	}
	for _, t := range timers {
		if t < 0 || t > NewbornTimer {
			return s, fmt.Errorf("%w: %d", ErrBadTimer, t)
		}
		s[t]++
	}
	return s, nil
}

// Step advances the school one day.
func (s School) Step() School {
	var next School
	copy(next[:], s[1:])
	next[ResetTimer] += s[0]
	next[NewbornTimer] = s[0]
	return next
}

// Count returns the population after days.
func (s School) Count(days int) uint64 {
	for i := 0; i < days; i++ {
		s = s.Step()
	}
	return input.Sum(s[:])
}
