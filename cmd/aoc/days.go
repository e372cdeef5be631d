package main

import (
	"bytes"

	"github.com/katalvlaran/aoc2021/alu"
	"github.com/katalvlaran/aoc2021/basins"
	"github.com/katalvlaran/aoc2021/bingo"
	"github.com/katalvlaran/aoc2021/caves"
	"github.com/katalvlaran/aoc2021/chiton"
	"github.com/katalvlaran/aoc2021/crabs"
	"github.com/katalvlaran/aoc2021/cucumber"
	"github.com/katalvlaran/aoc2021/diagnostic"
	"github.com/katalvlaran/aoc2021/dirac"
	"github.com/katalvlaran/aoc2021/dive"
	"github.com/katalvlaran/aoc2021/internal/puzzle"
	"github.com/katalvlaran/aoc2021/lanternfish"
	"github.com/katalvlaran/aoc2021/octopus"
	"github.com/katalvlaran/aoc2021/origami"
	"github.com/katalvlaran/aoc2021/polymer"
	"github.com/katalvlaran/aoc2021/reactor"
	"github.com/katalvlaran/aoc2021/segments"
	"github.com/katalvlaran/aoc2021/sonar"
	"github.com/katalvlaran/aoc2021/syntax"
	"github.com/katalvlaran/aoc2021/trickshot"
	"github.com/katalvlaran/aoc2021/vents"
)

// Step limits for simulations that run until a condition holds.
const (
	syncLimit   = 10_000
	settleLimit = 100_000
)

type day struct {
	n     int
	name  string
	solve puzzle.Solver
}

var days = []day{
	{1, "sonar", solveSonar},
	{2, "dive", solveDive},
	{3, "diagnostic", solveDiagnostic},
	{4, "bingo", solveBingo},
	{5, "vents", solveVents},
	{6, "lanternfish", solveLanternfish},
	{7, "crabs", solveCrabs},
	{8, "segments", solveSegments},
	{9, "basins", solveBasins},
	{10, "syntax", solveSyntax},
	{11, "octopus", solveOctopus},
	{12, "caves", solveCaves},
	{13, "origami", solveOrigami},
	{14, "polymer", solvePolymer},
	{15, "chiton", solveChiton},
	{17, "trickshot", solveTrickshot},
	{21, "dirac", solveDirac},
	{22, "reactor", solveReactor},
	{24, "alu", solveALU},
	{25, "cucumber", solveCucumber},
}

// registerAll adds every solver to reg.
func registerAll(reg *puzzle.Registry) error {
	for _, d := range days {
		if err := reg.Register(d.n, d.name, d.solve); err != nil {
			return err
		}
	}
	return nil
}

func solveSonar(in []byte) (puzzle.Answer, error) {
	depths, err := sonar.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	a, err := sonar.Increases(depths, 1)
	if err != nil {
		return puzzle.Answer{}, err
	}
	b, err := sonar.Increases(depths, 3)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: int64(a), Part2: int64(b)}, nil
}

func solveDive(in []byte) (puzzle.Answer, error) {
	cmds, err := dive.Parse(bytes.NewReader(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: dive.Position(cmds), Part2: dive.AimedPosition(cmds)}, nil
}

func solveDiagnostic(in []byte) (puzzle.Answer, error) {
	r, err := diagnostic.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	life, err := r.LifeSupport()
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: r.PowerConsumption(), Part2: life}, nil
}

func solveBingo(in []byte) (puzzle.Answer, error) {
	g, err := bingo.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	first, last, err := g.Result()
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: int64(first.Score), Part2: int64(last.Score)}, nil
}

func solveVents(in []byte) (puzzle.Answer, error) {
	segs, err := vents.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: int64(vents.Overlaps(segs, 2, false)),
		Part2: int64(vents.Overlaps(segs, 2, true)),
	}, nil
}

func solveLanternfish(in []byte) (puzzle.Answer, error) {
	s, err := lanternfish.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: int64(s.Count(80)), Part2: int64(s.Count(256))}, nil
}

func solveCrabs(in []byte) (puzzle.Answer, error) {
	ps, err := crabs.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	_, a, err := crabs.Cheapest(ps, crabs.Linear)
	if err != nil {
		return puzzle.Answer{}, err
	}
	_, b, err := crabs.Cheapest(ps, crabs.Triangular)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: a, Part2: b}, nil
}

func solveSegments(in []byte) (puzzle.Answer, error) {
	entries, err := segments.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	sum, err := segments.SumOutputs(entries)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: int64(segments.CountUnique(entries)), Part2: int64(sum)}, nil
}

func solveBasins(in []byte) (puzzle.Answer, error) {
	g, err := basins.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	p, err := basins.LargestProduct(g, 3)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: int64(basins.RiskLevel(g)), Part2: int64(p)}, nil
}

func solveSyntax(in []byte) (puzzle.Answer, error) {
	sum, err := syntax.Summarize(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	median, err := sum.MedianCompletion()
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: int64(sum.ErrorTotal), Part2: int64(median)}, nil
}

func solveOctopus(in []byte) (puzzle.Answer, error) {
	c, err := octopus.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	flashes := c.Flashes(100)
	c, err = octopus.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	sync, err := c.FirstSync(syncLimit)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: int64(flashes), Part2: int64(sync)}, nil
}

func solveCaves(in []byte) (puzzle.Answer, error) {
	s, err := caves.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: s.Paths(false), Part2: s.Paths(true)}, nil
}

func solveOrigami(in []byte) (puzzle.Answer, error) {
	s, err := origami.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	dots := s.FoldAll()
	return puzzle.Answer{
		Part1:  int64(s.VisibleAfterFirst()),
		Part2:  int64(len(dots)),
		Render: origami.Render(dots),
	}, nil
}

func solvePolymer(in []byte) (puzzle.Answer, error) {
	m, err := polymer.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: m.Spread(10), Part2: m.Spread(40)}, nil
}

func solveChiton(in []byte) (puzzle.Answer, error) {
	g, err := chiton.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	a, err := chiton.LowestRisk(g)
	if err != nil {
		return puzzle.Answer{}, err
	}
	b, err := chiton.FullRisk(g)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: a, Part2: b}, nil
}

func solveTrickshot(in []byte) (puzzle.Answer, error) {
	t, err := trickshot.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	peak, hits, err := t.Survey()
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: int64(peak), Part2: int64(hits)}, nil
}

func solveDirac(in []byte) (puzzle.Answer, error) {
	s, err := dirac.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	best, err := dirac.MostWins(s)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: int64(dirac.Practice(s)), Part2: best}, nil
}

func solveReactor(in []byte) (puzzle.Answer, error) {
	steps, err := reactor.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: int64(reactor.CountInit(steps)), Part2: reactor.Count(steps)}, nil
}

func solveALU(in []byte) (puzzle.Answer, error) {
	p, err := alu.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	hi, err := alu.Largest(p)
	if err != nil {
		return puzzle.Answer{}, err
	}
	lo, err := alu.Smallest(p)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: hi, Part2: lo}, nil
}

func solveCucumber(in []byte) (puzzle.Answer, error) {
	f, err := cucumber.Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}
	step, err := f.Settle(settleLimit)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: int64(step), Render: f.Render()}, nil
}
