package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aoc2021/gridgraph"
)

// BenchmarkRegions measures Regions on a random 500×500 grid with values in [0,9].
func BenchmarkRegions(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	g, err := gridgraph.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for i := range g.Cells {
		g.Cells[i] = rng.Intn(10)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Regions(gridgraph.Conn4, func(v int) bool { return v != 9 })
	}
}
