package alu

import (
	"errors"
	"fmt"
	"math"
)

// BlockLen is the instruction count of one MONAD digit block.
const BlockLen = 18

var (
	// ErrUnsupportedProgram indicates a program not laid out as digit blocks.
	ErrUnsupportedProgram = errors.New("alu: program is not a sequence of digit blocks")
	// ErrNoModelNumber is returned when no digit sequence is accepted.
	ErrNoModelNumber = errors.New("alu: no accepted model number")
)

// Option configures the model number search.
type Option func(*Options)

// Options controls the search.
type Options struct {
	// Cache memoises dead (block, z) states.
	Cache bool
	// Prune skips states whose z cannot shrink to zero in time.
	Prune bool
}

// DefaultOptions enables both the cache and the z ceiling.
func DefaultOptions() Options { return Options{Cache: true, Prune: true} }

// WithCache toggles memoisation.
func WithCache(on bool) Option { return func(o *Options) { o.Cache = on } }

// WithPrune toggles the z ceiling.
func WithPrune(on bool) Option { return func(o *Options) { o.Prune = on } }

// Blocks splits p into BlockLen-instruction blocks each starting with inp w.
func (p Program) Blocks() ([]Program, error) {
	if len(p) == 0 || len(p)%BlockLen != 0 {
		return nil, fmt.Errorf("%w: %d instructions", ErrUnsupportedProgram, len(p))
	}
	blocks := make([]Program, 0, len(p)/BlockLen)
	for i := 0; i < len(p); i += BlockLen {
		b := p[i : i+BlockLen]
		if b[0].Op != Inp || b[0].A != W {
			return nil, fmt.Errorf("%w: block %d does not start with inp w", ErrUnsupportedProgram, i/BlockLen)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// divisor returns the literal of the block's "div z N", or 1.
func divisor(b Program) int64 {
	for _, in := range b {
		if in.Op == Div && in.A == Z && !in.BReg && in.BVal > 1 {
			return in.BVal
		}
	}
	return 1
}

type deadKey struct {
	block int
	z     int64
}

type searcher struct {
	blocks  []Program
	ceiling []int64 // ceiling[i] bounds z entering block i; math.MaxInt64 when unbounded
	digits  []int64
	dead    map[deadKey]struct{}
	prune   bool
	steps   []int64
}

func newSearcher(p Program, digits []int64, o Options) (*searcher, error) {
	blocks, err := p.Blocks()
	if err != nil {
		return nil, err
	}
	s := &searcher{
		blocks:  blocks,
		ceiling: make([]int64, len(blocks)+1),
		digits:  digits,
		prune:   o.Prune,
		steps:   make([]int64, len(blocks)),
	}
	if o.Cache {
		s.dead = make(map[deadKey]struct{})
	}
	s.ceiling[len(blocks)] = 1
	for i := len(blocks) - 1; i >= 0; i-- {
		d, next := divisor(blocks[i]), s.ceiling[i+1]
		if next > math.MaxInt64/d {
			s.ceiling[i] = math.MaxInt64
		} else {
			s.ceiling[i] = next * d
		}
	}
	return s, nil
}

func (s *searcher) walk(block int, z int64) (bool, error) {
	if block == len(s.blocks) {
		return z == 0, nil
	}
	if s.prune && z >= s.ceiling[block] {
		return false, nil
	}
	key := deadKey{block: block, z: z}
	if s.dead != nil {
		if _, ok := s.dead[key]; ok {
			return false, nil
		}
	}
	for _, d := range s.digits {
		regs, err := s.blocks[block].Exec(Registers{Z: z}, []int64{d})
		if err != nil {
			return false, fmt.Errorf("block %d digit %d: %w", block, d, err)
		}
		ok, err := s.walk(block+1, regs[Z])
		if err != nil {
			return false, err
		}
		if ok {
			s.steps[block] = d
			return true, nil
		}
	}
	if s.dead != nil {
		s.dead[key] = struct{}{}
	}
	return false, nil
}

func search(p Program, digits []int64, opts []Option) (int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s, err := newSearcher(p, digits, o)
	if err != nil {
		return 0, err
	}
	ok, err := s.walk(0, 0)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNoModelNumber
	}
	var n int64
	for _, d := range s.steps {
		n = n*10 + d
	}
	return n, nil
}

// Largest returns the largest model number p accepts, first block most significant.
func Largest(p Program, opts ...Option) (int64, error) {
	return search(p, []int64{9, 8, 7, 6, 5, 4, 3, 2, 1}, opts)
}

// Smallest returns the smallest model number p accepts.
func Smallest(p Program, opts ...Option) (int64, error) {
	return search(p, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}, opts)
}

// Digits splits a model number into its decimal digits.
func Digits(n int64) []int64 {
	var ds []int64
	for ; n > 0; n /= 10 {
		ds = append([]int64{n % 10}, ds...)
	}
	return ds
}
