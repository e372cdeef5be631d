package dirac

import "fmt"

// rollWeights lists each three-roll sum of a three-sided die with the number
// of universes producing it.
var rollWeights = [...]struct{ sum, ways int64 }{
	{3, 1}, {4, 3}, {5, 6}, {6, 7}, {7, 6}, {8, 3}, {9, 1},
}

// Option configures a Dirac game.
type Option func(*Options)

// Options controls the quantum game.
type Options struct {
	Target int
	Cache  bool
	err    error
}

// DefaultOptions targets DiracTarget with memoisation on.
func DefaultOptions() Options {
	return Options{Target: DiracTarget, Cache: true}
}

// WithTarget sets the winning score; it must be positive.
func WithTarget(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: target %d", ErrOptionViolation, n)
			return
		}
		o.Target = n
	}
}

// WithCache toggles memoisation.
func WithCache(on bool) Option {
	return func(o *Options) { o.Cache = on }
}

type state struct {
	pos   [2]int
	score [2]int
	turn  int
}

type game struct {
	target int
	memo   map[state][2]int64
}

// Wins counts the universes each player wins in.
func Wins(s Start, opts ...Option) ([2]int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return [2]int64{}, o.err
	}
	g := &game{target: o.Target}
	if o.Cache {
		g.memo = make(map[state][2]int64)
	}
	return g.play(state{pos: s}), nil
}

func (g *game) play(st state) [2]int64 {
	if g.memo != nil {
		if w, ok := g.memo[st]; ok {
			return w
		}
	}
	var wins [2]int64
	p := st.turn
	for _, r := range rollWeights {
		next := st
		next.pos[p] = advance(st.pos[p], int(r.sum))
		next.score[p] += next.pos[p]
		if next.score[p] >= g.target {
			wins[p] += r.ways
			continue
		}
		next.turn ^= 1
		sub := g.play(next)
		wins[0] += r.ways * sub[0]
		wins[1] += r.ways * sub[1]
	}
	if g.memo != nil {
		g.memo[st] = wins
	}
	return wins
}

// MostWins returns the larger of the two win counts.
func MostWins(s Start, opts ...Option) (int64, error) {
	w, err := Wins(s, opts...)
	if err != nil {
		return 0, err
	}
	return max(w[0], w[1]), nil
}
