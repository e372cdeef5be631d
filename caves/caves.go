package caves

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/aoc2021/internal/input"
)

// Well-known cave names.
const (
	Start = "start"
	End   = "end"
)

// maxCaves bounds the cave count to the width of the visited mask.
const maxCaves = 64

var (
	// ErrBadEdge indicates a line that is not "a-b".
	ErrBadEdge = errors.New("caves: malformed edge")
	// ErrMissingCave indicates the system lacks start or end.
	ErrMissingCave = errors.New("caves: start or end missing")
	// ErrTooManyCaves indicates more caves than the visited mask can hold.
	ErrTooManyCaves = errors.New("caves: too many caves")
	// ErrBigLoop indicates two adjacent big caves, which allow infinite routes.
	ErrBigLoop = errors.New("caves: adjacent big caves")
)

// System is an undirected cave graph.
type System struct {
	names []string
	ids   map[string]int
	adj   [][]int
	small []bool
	start int
	end   int
}

func (s *System) intern(name string) (int, error) {
	if id, ok := s.ids[name]; ok {
		return id, nil
	}
	if len(s.names) == maxCaves {
		return 0, ErrTooManyCaves
	}
	id := len(s.names)
	s.ids[name] = id
	s.names = append(s.names, name)
	s.adj = append(s.adj, nil)
	s.small = append(s.small, unicode.IsLower([]rune(name)[0]))
	return id, nil
}

// Parse reads one "a-b" connection per line.
func Parse(text string) (*System, error) {
	s := &System{ids: make(map[string]int)}
	lines, err := input.SplitLines(text)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		a, b, ok := strings.Cut(line, "-")
		if !ok || a == "" || b == "" || a == b {
			return nil, fmt.Errorf("%w: %q", ErrBadEdge, line)
		}
		ia, err := s.intern(a)
		if err != nil {
			return nil, err
		}
		ib, err := s.intern(b)
		if err != nil {
			return nil, err
		}
		if !s.small[ia] && !s.small[ib] {
			return nil, fmt.Errorf("%w: %q", ErrBigLoop, line)
		}
		s.adj[ia] = append(s.adj[ia], ib)
		s.adj[ib] = append(s.adj[ib], ia)
	}
	var okStart, okEnd bool
	s.start, okStart = s.ids[Start]
	s.end, okEnd = s.ids[End]
	if !okStart || !okEnd {
		return nil, ErrMissingCave
	}
	return s, nil
}

// Len returns the number of caves.
func (s *System) Len() int { return len(s.names) }
