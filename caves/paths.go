package caves

// Option configures a path count.
type Option func(*Options)

// Options controls the search.
type Options struct {
	// Cache enables memoisation of sub-results.
	Cache bool
}

// DefaultOptions returns Options with the cache enabled.
func DefaultOptions() Options { return Options{Cache: true} }

// WithCache toggles memoisation.
func WithCache(on bool) Option {
	return func(o *Options) { o.Cache = on }
}

type state struct {
	cave    int
	visited uint64
	repeat  bool
}

type counter struct {
	sys  *System
	memo map[state]int64
}

// Paths counts distinct routes from start to end. With allowRepeat one small
// cave other than start and end may be visited twice per route.
func (s *System) Paths(allowRepeat bool, opts ...Option) int64 {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &counter{sys: s}
	if o.Cache {
		c.memo = make(map[state]int64)
	}
	return c.count(state{cave: s.start, visited: 1 << s.start, repeat: allowRepeat})
}

func (c *counter) count(st state) int64 {
	if st.cave == c.sys.end {
		return 1
	}
	if c.memo != nil {
		if n, ok := c.memo[st]; ok {
			return n
		}
	}
	var total int64
	for _, next := range c.sys.adj[st.cave] {
		if next == c.sys.start {
			continue
		}
		bit := uint64(1) << next
		nst := state{cave: next, visited: st.visited, repeat: st.repeat}
		if c.sys.small[next] {
			if st.visited&bit != 0 {
				if !st.repeat || next == c.sys.end {
					continue
				}
				nst.repeat = false
			}
			nst.visited |= bit
		}
		total += c.count(nst)
	}
	if c.memo != nil {
		c.memo[st] = total
	}
	return total
}
