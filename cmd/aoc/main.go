// Command aoc runs the Advent of Code 2021 solvers against input files.
//
//	aoc [-config aoc.yaml] [-day N] [-input path]
//
// Inputs default to inputs/dayNN.txt. Answers are logged with zerolog; the
// process exits non-zero if any day fails to parse or solve.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/aoc2021/internal/puzzle"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		day        = flag.Int("day", 0, "solve only this day")
		inputPath  = flag.String("input", "", "input file for -day")
	)
	flag.Parse()

	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *day != 0 {
		cfg.Days = []int{*day}
	}
	cfg.Input = *inputPath
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	reg := puzzle.NewRegistry()
	if err := registerAll(reg); err != nil {
		log.Fatal().Err(err).Msg("failed to register solvers")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, cfg, reg, log.Logger, os.Stdout); err != nil {
		log.Error().Err(err).Msg("run failed")
		stop()
		os.Exit(1)
	}
}
