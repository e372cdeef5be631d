// Package syntax checks navigation-subsystem lines of nested brackets.
//
// A line is corrupted when a closer does not match the innermost open chunk,
// incomplete when it ends with chunks still open, and valid otherwise.
package syntax

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/aoc2021/internal/input"
)

var (
	// ErrBadRune reports a character that is not one of ()[]{}<>.
	ErrBadRune = errors.New("syntax: unexpected character")
	// ErrNoIncomplete is returned when no line needs completing.
	ErrNoIncomplete = errors.New("syntax: no incomplete lines")
)

// Status classifies a checked line.
type Status int

const (
	Valid Status = iota
	Corrupted
	Incomplete
)

func (s Status) String() string {
	switch s {
	case Corrupted:
		return "corrupted"
	case Incomplete:
		return "incomplete"
	}
	return "valid"
}

var closerOf = map[rune]rune{'(': ')', '[': ']', '{': '}', '<': '>'}

var (
	errorPoints      = map[rune]int{')': 3, ']': 57, '}': 1197, '>': 25137}
	completionPoints = map[rune]int{')': 1, ']': 2, '}': 3, '>': 4}
)

// Report is the outcome of Check.
type Report struct {
	Status Status
	// Illegal is the first mismatched closer when Corrupted.
	Illegal rune
	// Completion is the closing sequence when Incomplete.
	Completion string
}

// Check scans line with a stack of expected closers.
func Check(line string) (Report, error) {
	var stack []rune
	for _, r := range line {
		if c, ok := closerOf[r]; ok {
			stack = append(stack, c)
			continue
		}
		if _, ok := completionPoints[r]; !ok {
			return Report{}, fmt.Errorf("%w: %q", ErrBadRune, r)
		}
		if len(stack) == 0 || stack[len(stack)-1] != r {
			return Report{Status: Corrupted, Illegal: r}, nil
		}
		stack = stack[:len(stack)-1]
	}
	if len(stack) == 0 {
		return Report{Status: Valid}, nil
	}
	slices.Reverse(stack)
	return Report{Status: Incomplete, Completion: string(stack)}, nil
}

// ErrorScore returns the illegal-character score of a corrupted report.
func (r Report) ErrorScore() int {
	if r.Status != Corrupted {
		return 0
	}
	return errorPoints[r.Illegal]
}

// CompletionScore folds the completion string base 5.
func (r Report) CompletionScore() int {
	score := 0
	for _, c := range r.Completion {
		score = score*5 + completionPoints[c]
	}
	return score
}

// Summary aggregates a checked navigation subsystem.
type Summary struct {
	// ErrorTotal adds up ErrorScore over corrupted lines.
	ErrorTotal int
	// Completions holds CompletionScore of each incomplete line, ascending.
	Completions []int
}

// Summarize checks every non-empty line of text.
func Summarize(text string) (Summary, error) {
	var sum Summary
	lines, err := input.SplitLines(text)
	if err != nil {
		return sum, err
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rep, err := Check(line)
		if err != nil {
			return Summary{}, err
		}
		switch rep.Status {
		case Corrupted:
			sum.ErrorTotal += rep.ErrorScore()
		case Incomplete:
			sum.Completions = append(sum.Completions, rep.CompletionScore())
		}
	}
	slices.Sort(sum.Completions)
	return sum, nil
}

// MedianCompletion returns the middle completion score. With no incomplete
// line there is no median and ErrNoIncomplete is returned.
func (s Summary) MedianCompletion() (int, error) {
	if len(s.Completions) == 0 {
		return 0, ErrNoIncomplete
	}
	return s.Completions[len(s.Completions)/2], nil
}
