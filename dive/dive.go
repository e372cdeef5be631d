// Package dive plots a submarine course from forward/up/down commands.
package dive

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2021/internal/input"
)

// ErrBadCommand wraps any line that is not "<direction> <units>".
var ErrBadCommand = errors.New("dive: malformed command")

// Direction of a single command.
type Direction int

const (
	Forward Direction = iota
	Up
	Down
)

// Command moves the submarine Units in Dir.
type Command struct {
	Dir   Direction
	Units int64
}

// ParseCommand parses a line such as "forward 5".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Command{}, fmt.Errorf("%w: %q", ErrBadCommand, line)
	}
	units, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", ErrBadCommand, line)
	}
	var dir Direction
	switch fields[0] {
	case "forward":
		dir = Forward
	case "up":
		dir = Up
	case "down":
		dir = Down
	default:
		return Command{}, fmt.Errorf("%w: unknown direction %q", ErrBadCommand, fields[0])
	}
	return Command{Dir: dir, Units: units}, nil
}

// Parse reads one command per line, skipping blank lines.
func Parse(r io.Reader) ([]Command, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	var cmds []Command
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c, err := ParseCommand(line)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

// Position follows the commands literally (up/down change depth) and
// returns horizontal position × depth.
func Position(cmds []Command) int64 {
	var x, depth int64
	for _, c := range cmds {
		switch c.Dir {
		case Forward:
			x += c.Units
		case Up:
			depth -= c.Units
		case Down:
			depth += c.Units
		}
	}
	return x * depth
}

// AimedPosition treats up/down as changes to aim; forward moves along the
// aim. Returns horizontal position × depth.
func AimedPosition(cmds []Command) int64 {
	var x, depth, aim int64
	for _, c := range cmds {
		switch c.Dir {
		case Forward:
			x += c.Units
			depth += c.Units * aim
		case Up:
			aim -= c.Units
		case Down:
			aim += c.Units
		}
	}
	return x * depth
}
