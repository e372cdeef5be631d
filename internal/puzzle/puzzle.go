// Package puzzle is the registry that maps a day number to its solver.
package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrUnknownDay is returned by Lookup for an unregistered day.
	ErrUnknownDay = errors.New("puzzle: day not registered")
	// ErrDuplicateDay is returned when a day is registered twice.
	ErrDuplicateDay = errors.New("puzzle: day already registered")
)

// Answer is the result of solving one day. Render, when non-empty, is an
// informational drawing that is not part of the checked answer.
type Answer struct {
	Part1  int64
	Part2  int64
	Render string
}

// Solver computes both parts from the raw puzzle input.
type Solver func(in []byte) (Answer, error)

// Entry is a registered solver.
type Entry struct {
	Day   int
	Name  string
	Solve Solver
}

// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[int]Entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[int]Entry)}
}

// Register adds a solver for day.
func (r *Registry) Register(day int, name string, s Solver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[day]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, day)
	}
	r.entries[day] = Entry{Day: day, Name: name, Solve: s}
	return nil
}

// Lookup returns the entry for day.
func (r *Registry) Lookup(day int) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[day]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return e, nil
}

// Days lists registered days in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	days := make([]int, 0, len(r.entries))
	for d := range r.entries {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
