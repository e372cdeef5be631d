// Package diagnostic decodes the submarine's binary diagnostic report.
//
// Every reading is a fixed-width string of '0' and '1'. Gamma takes the most
// common bit of each column, epsilon the least common; power consumption is
// their product. The life support rating filters readings column by column,
// keeping those that match the most (oxygen) or least (CO2) common bit, with
// ties resolved to '1' for oxygen and '0' for CO2.
package diagnostic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2021/internal/input"
)

var (
	// ErrEmptyReport indicates there are no readings.
	ErrEmptyReport = errors.New("diagnostic: report has no readings")
	// ErrBadReading indicates a reading of the wrong width or with a non-binary digit.
	ErrBadReading = errors.New("diagnostic: malformed reading")
)

// Report is a validated list of equal-width binary readings.
type Report struct {
	Width    int
	Readings []string
}

// Parse reads one binary reading per line.
func Parse(text string) (*Report, error) {
	var r Report
	lines, err := input.SplitLines(text)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if r.Width == 0 {
			r.Width = len(line)
		}
		if len(line) != r.Width || strings.Trim(line, "01") != "" {
			return nil, fmt.Errorf("%w: %q", ErrBadReading, line)
		}
		r.Readings = append(r.Readings, line)
	}
	if len(r.Readings) == 0 {
		return nil, ErrEmptyReport
	}
	return &r, nil
}

// ones counts '1' bits in column col.
func ones(readings []string, col int) int {
	n := 0
	for _, s := range readings {
		if s[col] == '1' {
			n++
		}
	}
	return n
}

// PowerConsumption returns gamma × epsilon.
func (r *Report) PowerConsumption() int64 {
	var gamma, epsilon int64
	for col := 0; col < r.Width; col++ {
		gamma <<= 1
		epsilon <<= 1
		if 2*ones(r.Readings, col) > len(r.Readings) {
			gamma |= 1
		} else {
			epsilon |= 1
		}
	}
	return gamma * epsilon
}

// LifeSupport returns oxygen generator rating × CO2 scrubber rating.
func (r *Report) LifeSupport() (int64, error) {
	oxygen, err := r.filter(true)
	if err != nil {
		return 0, err
	}
	co2, err := r.filter(false)
	if err != nil {
		return 0, err
	}
	return oxygen * co2, nil
}

func (r *Report) filter(mostCommon bool) (int64, error) {
	keep := append([]string(nil), r.Readings...)
	for col := 0; col < r.Width && len(keep) > 1; col++ {
		n := ones(keep, col)
		bit := byte('0')
		if (2*n >= len(keep)) == mostCommon {
			bit = '1'
		}
		next := keep[:0]
		for _, s := range keep {
			if s[col] == bit {
				next = append(next, s)
			}
		}
		keep = next
	}
	if len(keep) != 1 {
		return 0, fmt.Errorf("diagnostic: %d readings survive filtering", len(keep))
	}
	return strconv.ParseInt(keep[0], 2, 64)
}
