package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// ErrBadConfig wraps any invalid configuration value.
var ErrBadConfig = errors.New("aoc: invalid config")

// Config drives a run. Zero-valued fields fall back to DefaultConfig.
type Config struct {
	// InputDir holds dayNN.txt files.
	InputDir string `yaml:"input_dir"`
	// Days to solve; empty means every registered day.
	Days []int `yaml:"days"`
	// Workers bounds concurrently running solvers.
	Workers int `yaml:"workers"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
	// Render prints drawings some days produce.
	Render bool `yaml:"render"`

	// Input overrides the input path when exactly one day is selected.
	Input string `yaml:"-"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() Config {
	return Config{
		InputDir: "inputs",
		Workers:  runtime.NumCPU(),
		LogLevel: zerolog.LevelInfoValue,
	}
}

// LoadConfig reads YAML from path over DefaultConfig. An empty path yields
// the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("aoc: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrBadConfig, path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrBadConfig, c.Workers)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrBadConfig, c.LogLevel)
	}
	for _, d := range c.Days {
		if d < 1 || d > 25 {
			return fmt.Errorf("%w: day %d out of range", ErrBadConfig, d)
		}
	}
	if c.Input != "" && len(c.Days) != 1 {
		return fmt.Errorf("%w: -input %q needs exactly one day, got %d", ErrBadConfig, c.Input, len(c.Days))
	}
	return nil
}

// InputPath returns the input file for day.
func (c Config) InputPath(day int) string {
	if c.Input != "" && len(c.Days) == 1 && c.Days[0] == day {
		return c.Input
	}
	return filepath.Join(c.InputDir, fmt.Sprintf("day%02d.txt", day))
}
