// Package input reads puzzle input files and parses the small numeric
// formats that recur across days.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrBadNumber wraps any integer that fails to parse.
var ErrBadNumber = errors.New("input: malformed integer")

// maxLine bounds a single input line; puzzle inputs stay well under it.
const maxLine = 1 << 20

// Reader is a buffered reader over an open input file.
type Reader struct {
	*bufio.Reader
	f *os.File
}

// Open opens path for buffered reading. The caller must Close the Reader.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open %s: %w", path, err)
	}
	return &Reader{Reader: bufio.NewReader(f), f: f}, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error { return r.f.Close() }

// Lines splits r into lines, stripping "\n" and "\r\n".
func Lines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: scan: %w", err)
	}
	return lines, nil
}

// SplitLines is Lines over an in-memory puzzle text.
func SplitLines(text string) ([]string, error) {
	return Lines(strings.NewReader(text))
}

// Ints parses s into integers separated by sep. An empty sep splits on
// whitespace. Surrounding whitespace around each field is ignored.
func Ints[T constraints.Integer](s, sep string) ([]T, error) {
	var fields []string
	if sep == "" {
		fields = strings.Fields(s)
	} else {
		fields = strings.Split(strings.TrimSpace(s), sep)
	}
	out := make([]T, 0, len(fields))
	for _, f := range fields {
		n, err := Int[T](f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Int parses a single base-10 integer, trimming surrounding whitespace.
func Int[T constraints.Integer](s string) (T, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}
	return T(n), nil
}

// Abs returns |v|.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sum adds up vs.
func Sum[T constraints.Integer](vs []T) T {
	var total T
	for _, v := range vs {
		total += v
	}
	return total
}
