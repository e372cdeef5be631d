package reactor

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2021/internal/input"
)

// InitBound is the half-width of the initialisation region.
const InitBound = 50

// ErrBadStep indicates a line that is not "on|off x=a..b,y=c..d,z=e..f".
var ErrBadStep = errors.New("reactor: malformed step")

var stepRE = regexp.MustCompile(`^(on|off) x=(-?\d+)\.\.(-?\d+),y=(-?\d+)\.\.(-?\d+),z=(-?\d+)\.\.(-?\d+)$`)

// Cuboid is an inclusive integer box.
type Cuboid struct {
	X1, X2, Y1, Y2, Z1, Z2 int
}

// Volume counts the cubes in c.
func (c Cuboid) Volume() int64 {
	return int64(c.X2-c.X1+1) * int64(c.Y2-c.Y1+1) * int64(c.Z2-c.Z1+1)
}

// Intersect returns the overlap of c and o, if any.
func (c Cuboid) Intersect(o Cuboid) (Cuboid, bool) {
	r := Cuboid{
		X1: max(c.X1, o.X1), X2: min(c.X2, o.X2),
		Y1: max(c.Y1, o.Y1), Y2: min(c.Y2, o.Y2),
		Z1: max(c.Z1, o.Z1), Z2: min(c.Z2, o.Z2),
	}
	if r.X1 > r.X2 || r.Y1 > r.Y2 || r.Z1 > r.Z2 {
		return Cuboid{}, false
	}
	return r, true
}

// Step switches every cube in Cuboid on or off.
type Step struct {
	On bool
	Cuboid
}

// Parse reads one step per line.
func Parse(text string) ([]Step, error) {
	var steps []Step
	lines, err := input.SplitLines(text)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := stepRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrBadStep, line)
		}
		var v [6]int
		for i := range v {
			n, err := strconv.Atoi(m[i+2])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadStep, line)
			}
			v[i] = n
		}
		c := Cuboid{
			X1: min(v[0], v[1]), X2: max(v[0], v[1]),
			Y1: min(v[2], v[3]), Y2: max(v[2], v[3]),
			Z1: min(v[4], v[5]), Z2: max(v[4], v[5]),
		}
		steps = append(steps, Step{On: m[1] == "on", Cuboid: c})
	}
	return steps, nil
}

// CountInit applies steps voxel by voxel inside the initialisation region
// and returns how many cubes end up on. Parts of steps outside the region
// are ignored.
func CountInit(steps []Step) int {
	const side = 2*InitBound + 1
	region := Cuboid{-InitBound, InitBound, -InitBound, InitBound, -InitBound, InitBound}
	grid := make([]bool, side*side*side)
	for _, s := range steps {
		c, ok := s.Intersect(region)
		if !ok {
			continue
		}
		for x := c.X1; x <= c.X2; x++ {
			for y := c.Y1; y <= c.Y2; y++ {
				base := ((x+InitBound)*side + (y + InitBound)) * side
				for z := c.Z1; z <= c.Z2; z++ {
					grid[base+z+InitBound] = s.On
				}
			}
		}
	}
	n := 0
	for _, on := range grid {
		if on {
			n++
		}
	}
	return n
}

type signed struct {
	Cuboid
	sign int64
}

// Count returns how many cubes are on after every step, over the whole core.
func Count(steps []Step) int64 {
	var regions []signed
	for _, s := range steps {
		var add []signed
		for _, r := range regions {
			if in, ok := r.Intersect(s.Cuboid); ok {
				add = append(add, signed{Cuboid: in, sign: -r.sign})
			}
		}
		if s.On {
			add = append(add, signed{Cuboid: s.Cuboid, sign: 1})
		}
		regions = append(regions, add...)
	}
	var total int64
	for _, r := range regions {
		total += r.sign * r.Volume()
	}
	return total
}
