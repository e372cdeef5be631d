// Package trickshot searches launch velocities for a probe that must end a
// step inside a target area.
//
// Each step the probe moves by its velocity, drag pulls the x velocity one
// unit toward zero and gravity lowers the y velocity by one. The target must
// lie at x ≥ 0 and entirely below the launch point.
package trickshot

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Search bounds for initial velocities: dx in [0, MaxDX), dy in [MinDY, MaxDY).
const (
	MaxDX = 500
	MinDY = -500
	MaxDY = 500
)

var (
	// ErrBadTarget indicates unparsable input or a target the search cannot cover.
	ErrBadTarget = errors.New("trickshot: malformed target area")
	// ErrNoHit is returned when no velocity in range reaches the target.
	ErrNoHit = errors.New("trickshot: no velocity hits the target")
)

var targetRE = regexp.MustCompile(`target area: x=(-?\d+)\.\.(-?\d+), y=(-?\d+)\.\.(-?\d+)`)

// Target is an inclusive rectangle.
type Target struct {
	X1, X2, Y1, Y2 int
}

// Parse reads "target area: x=A..B, y=C..D".
func Parse(text string) (Target, error) {
	m := targetRE.FindStringSubmatch(text)
	if m == nil {
		return Target{}, fmt.Errorf("%w: %q", ErrBadTarget, text)
	}
	var v [4]int
	for i := range v {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Target{}, fmt.Errorf("%w: %q: %v", ErrBadTarget, text, err)
		}
		v[i] = n
	}
	t := Target{X1: min(v[0], v[1]), X2: max(v[0], v[1]), Y1: min(v[2], v[3]), Y2: max(v[2], v[3])}
	if t.X1 < 0 || t.Y2 >= 0 {
		return Target{}, fmt.Errorf("%w: %q must be right of and below the origin", ErrBadTarget, text)
	}
	return t, nil
}

// Contains reports whether (x, y) lies in t.
func (t Target) Contains(x, y int) bool {
	return x >= t.X1 && x <= t.X2 && y >= t.Y1 && y <= t.Y2
}

// Launch simulates velocity (dx, dy) and reports whether the probe hits t,
// along with the highest y reached.
func (t Target) Launch(dx, dy int) (hit bool, peak int) {
	x, y := 0, 0
	for x <= t.X2 && y >= t.Y1 {
		x += dx
		y += dy
		peak = max(peak, y)
		if t.Contains(x, y) {
			return true, peak
		}
		if dx > 0 {
			dx--
		}
		dy--
		if dx == 0 && x < t.X1 {
			return false, peak
		}
	}
	return false, peak
}

// Survey tries every velocity within the search bounds and returns the
// highest peak among hits and the number of hitting velocities.
func (t Target) Survey() (peak, hits int, err error) {
	for dx := 0; dx < MaxDX; dx++ {
		for dy := MinDY; dy < MaxDY; dy++ {
			ok, p := t.Launch(dx, dy)
			if !ok {
				continue
			}
			if hits == 0 || p > peak {
				peak = p
			}
			hits++
		}
	}
	if hits == 0 {
		return 0, 0, ErrNoHit
	}
	return peak, hits, nil
}
