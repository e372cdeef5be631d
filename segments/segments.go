// Package segments decodes scrambled seven-segment displays.
//
// Each entry lists the ten unique signal patterns of one display followed by
// a four-digit output. Wires a..g are mapped to segments in an unknown
// permutation; patterns are held as 7-bit masks so the deduction is set
// arithmetic over bits.
package segments

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/aoc2021/internal/input"
)

var (
	// ErrBadEntry indicates a line that is not "10 patterns | 4 outputs".
	ErrBadEntry = errors.New("segments: malformed entry")
	// ErrUndecodable indicates patterns that do not form a consistent digit set.
	ErrUndecodable = errors.New("segments: patterns do not decode")
)

// Pattern is a set of lit wires, bit i for wire 'a'+i.
type Pattern uint8

// Len returns the number of lit wires.
func (p Pattern) Len() int { return bits.OnesCount8(uint8(p)) }

// Contains reports whether every wire of q is lit in p.
func (p Pattern) Contains(q Pattern) bool { return p&q == q }

// ParsePattern converts "acf" into a wire mask.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	for _, r := range s {
		if r < 'a' || r > 'g' {
			return 0, fmt.Errorf("%w: wire %q", ErrBadEntry, r)
		}
		p |= 1 << (r - 'a')
	}
	if p == 0 {
		return 0, fmt.Errorf("%w: empty pattern", ErrBadEntry)
	}
	return p, nil
}

// Entry is one display's observations.
type Entry struct {
	Patterns [10]Pattern
	Output   [4]Pattern
}

// ParseEntry reads "p0 ... p9 | o0 o1 o2 o3".
func ParseEntry(line string) (Entry, error) {
	var e Entry
	left, right, ok := strings.Cut(line, "|")
	if !ok {
		return e, fmt.Errorf("%w: %q", ErrBadEntry, line)
	}
	pats, outs := strings.Fields(left), strings.Fields(right)
	if len(pats) != len(e.Patterns) || len(outs) != len(e.Output) {
		return e, fmt.Errorf("%w: %q", ErrBadEntry, line)
	}
	for i, s := range pats {
		p, err := ParsePattern(s)
		if err != nil {
			return e, err
		}
		e.Patterns[i] = p
	}
	for i, s := range outs {
		p, err := ParsePattern(s)
		if err != nil {
			return e, err
		}
		e.Output[i] = p
	}
	return e, nil
}

// Parse reads one entry per non-empty line.
func Parse(text string) ([]Entry, error) {
	var out []Entry
	lines, err := input.SplitLines(text)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := ParseEntry(line)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// CountUnique counts output digits identifiable by length alone (1, 4, 7, 8).
func CountUnique(entries []Entry) int {
	n := 0
	for _, e := range entries {
		for _, o := range e.Output {
			switch o.Len() {
			case 2, 3, 4, 7:
				n++
			}
		}
	}
	return n
}

// Digits deduces which pattern shows each digit 0..9.
//
// 1, 4, 7 and 8 have unique lengths. Among six-wire patterns 9 contains 4,
// 0 contains 1 but not 4, and 6 is the rest. Among five-wire patterns 3
// contains 1, 5 is contained in 6, and 2 is the rest.
func (e Entry) Digits() ([10]Pattern, error) {
	var d [10]Pattern
	var five, six []Pattern
	for _, p := range e.Patterns {
		switch p.Len() {
		case 2:
			d[1] = p
		case 3:
			d[7] = p
		case 4:
			d[4] = p
		case 7:
			d[8] = p
		case 5:
			five = append(five, p)
		case 6:
			six = append(six, p)
		}
	}
	if d[1] == 0 || d[4] == 0 || d[7] == 0 || d[8] == 0 || len(five) != 3 || len(six) != 3 {
		return d, ErrUndecodable
	}
	for _, p := range six {
		switch {
		case p.Contains(d[4]):
			d[9] = p
		case p.Contains(d[1]):
			d[0] = p
		default:
			d[6] = p
		}
	}
	if d[0] == 0 || d[6] == 0 || d[9] == 0 {
		return d, ErrUndecodable
	}
	for _, p := range five {
		switch {
		case p.Contains(d[1]):
			d[3] = p
		case d[6].Contains(p):
			d[5] = p
		default:
			d[2] = p
		}
	}
	if d[2] == 0 || d[3] == 0 || d[5] == 0 {
		return d, ErrUndecodable
	}
	return d, nil
}

// Decode returns the four-digit output value of e.
func (e Entry) Decode() (int, error) {
	d, err := e.Digits()
	if err != nil {
		return 0, err
	}
	value := 0
	for _, o := range e.Output {
		digit := -1
		for n, p := range d {
			if p == o {
				digit = n
				break
			}
		}
		if digit < 0 {
			return 0, fmt.Errorf("%w: output %07b", ErrUndecodable, o)
		}
		value = value*10 + digit
	}
	return value, nil
}

// SumOutputs decodes every entry and adds up the output values.
func SumOutputs(entries []Entry) (int, error) {
	sum := 0
	for i, e := range entries {
		v, err := e.Decode()
		if err != nil {
			return 0, fmt.Errorf("entry %d: %w", i, err)
		}
		sum += v
	}
	return sum, nil
}
