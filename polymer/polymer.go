// Package polymer grows a polymer by pair insertion.
//
// The chain grows exponentially, so only the multiset of adjacent pairs is
// tracked: each rule AB -> C turns every AB pair into AC and CB. Element
// counts follow from the first letter of each pair plus the chain's final
// element, which never changes.
package polymer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/internal/input"
)

var (
	// ErrBadTemplate indicates an empty template or one containing spaces.
	ErrBadTemplate = errors.New("polymer: malformed template")
	// ErrBadRule indicates a line that is not "AB -> C".
	ErrBadRule = errors.New("polymer: malformed rule")
)

type pair [2]byte

// Manual holds the template and its insertion rules.
type Manual struct {
	Template string
	Rules    map[pair]byte
}

// Parse reads a template line, a blank line, and "AB -> C" rules.
func Parse(text string) (*Manual, error) {
	lines, err := input.SplitLines(strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrBadTemplate
	}
	m := &Manual{Template: strings.TrimSpace(lines[0]), Rules: make(map[pair]byte)}
	if m.Template == "" || strings.ContainsAny(m.Template, " \t") {
		return nil, ErrBadTemplate
	}
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		from, to, ok := strings.Cut(line, " -> ")
		if !ok || len(from) != 2 || len(to) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrBadRule, line)
		}
		m.Rules[pair{from[0], from[1]}] = to[0]
	}
	return m, nil
}

// Counts returns element frequencies after steps rounds of insertion.
func (m *Manual) Counts(steps int) map[byte]int64 {
	pairs := make(map[pair]int64)
	for i := 0; i+1 < len(m.Template); i++ {
		pairs[pair{m.Template[i], m.Template[i+1]}]++
	}
	for s := 0; s < steps; s++ {
		next := make(map[pair]int64, len(pairs))
		for p, n := range pairs {
			c, ok := m.Rules[p]
			if !ok {
				next[p] += n
				continue
			}
			next[pair{p[0], c}] += n
			next[pair{c, p[1]}] += n
		}
		pairs = next
	}
	counts := map[byte]int64{m.Template[len(m.Template)-1]: 1}
	for p, n := range pairs {
		counts[p[0]] += n
	}
	return counts
}

// Spread returns the most common element count minus the least common.
func (m *Manual) Spread(steps int) int64 {
	var lo, hi int64 = -1, 0
	for _, n := range m.Counts(steps) {
		hi = max(hi, n)
		if lo < 0 || n < lo {
			lo = n
		}
	}
	return hi - lo
}

// Expand performs steps rounds of insertion on the literal string. The
// result doubles in length each round; use it only for small step counts.
func (m *Manual) Expand(steps int) string {
	chain := []byte(m.Template)
	for s := 0; s < steps; s++ {
		next := make([]byte, 0, 2*len(chain))
		for i := range chain {
			next = append(next, chain[i])
			if i+1 < len(chain) {
				if c, ok := m.Rules[pair{chain[i], chain[i+1]}]; ok {
					next = append(next, c)
				}
			}
		}
		chain = next
	}
	return string(chain)
}
