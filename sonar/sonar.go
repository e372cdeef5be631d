// Package sonar counts depth increases in a sonar sweep report.
package sonar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2021/internal/input"
)

var (
	// ErrBadWindow indicates a window size below one.
	ErrBadWindow = errors.New("sonar: window must be at least 1")
	// ErrEmptyReport indicates input with no depths.
	ErrEmptyReport = errors.New("sonar: empty report")
)

// Parse reads one depth per line.
func Parse(text string) ([]int, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyReport
	}
	depths, err := input.Ints[int](text, "")
	if err != nil {
		return nil, fmt.Errorf("sonar: %w", err)
	}
	return depths, nil
}

// Increases counts how often the sum of a window of consecutive depths is
// larger than the sum of the window starting one measurement earlier.
// Only complete windows are compared.
func Increases(depths []int, window int) (int, error) {
	if window < 1 {
		return 0, ErrBadWindow
	}
	count := 0
	// consecutive windows share window-1 values, so only the ends differ
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			count++
		}
	}
	return count, nil
}
