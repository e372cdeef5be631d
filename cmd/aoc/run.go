package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc2021/internal/input"
	"github.com/katalvlaran/aoc2021/internal/puzzle"
)

type outcome struct {
	entry   puzzle.Entry
	answer  puzzle.Answer
	elapsed time.Duration
}

func readInput(path string) ([]byte, error) {
	r, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("aoc: read %s: %w", path, err)
	}
	return data, nil
}

// run solves the configured days with at most cfg.Workers in flight, then
// logs the answers in day order. The first failure cancels days not yet started.
func run(ctx context.Context, cfg Config, reg *puzzle.Registry, logger zerolog.Logger, out io.Writer) error {
	selected := cfg.Days
	if len(selected) == 0 {
		selected = reg.Days()
	}
	outcomes := make([]outcome, len(selected))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, d := range selected {
		i, d := i, d
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e, err := reg.Lookup(d)
			if err != nil {
				return err
			}
			data, err := readInput(cfg.InputPath(d))
			if err != nil {
				return fmt.Errorf("day %d: %w", d, err)
			}
			logger.Debug().Int("day", d).Str("name", e.Name).Int("bytes", len(data)).Msg("solving")
			start := time.Now()
			ans, err := e.Solve(data)
			if err != nil {
				return fmt.Errorf("day %d (%s): %w", d, e.Name, err)
			}
			outcomes[i] = outcome{entry: e, answer: ans, elapsed: time.Since(start)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, o := range outcomes {
		logger.Info().
			Int("day", o.entry.Day).
			Str("name", o.entry.Name).
			Int64("part1", o.answer.Part1).
			Int64("part2", o.answer.Part2).
			Dur("elapsed", o.elapsed).
			Msg("solved")
		if cfg.Render && o.answer.Render != "" {
			fmt.Fprintf(out, "day %d:\n%s\n", o.entry.Day, o.answer.Render)
		}
	}
	return nil
}
