package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is used when neither --config nor ADVENT_CONFIG is set.
const DefaultPath = "config/advent.yaml"

// EnvPath overrides the config file location.
const EnvPath = "ADVENT_CONFIG"

// Advent holds all configuration for the puzzle runner.
type Advent struct {
	// Directory with dayNN.txt inputs
	InputDir string `yaml:"input_dir"`

	// debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// How many days are solved at the same time
	Parallelism int `yaml:"parallelism"`

	// Days to solve when none are given on the command line; empty means all
	Days []int `yaml:"days"`

	Rope RopeConfig `yaml:"rope"`
}

// RopeConfig tunes the rope simulation day.
type RopeConfig struct {
	Knots int `yaml:"knots"`
}

// DefaultAdvent returns Advent config with sensible defaults.
func DefaultAdvent() Advent {
	return Advent{
		InputDir:    "inputs",
		LogLevel:    "info",
		Parallelism: 4,
		Rope: RopeConfig{
			Knots: 10,
		},
	}
}

// Path returns the config path from ADVENT_CONFIG, or DefaultPath.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// LoadAdvent loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadAdvent(path string) (Advent, error) {
	cfg := DefaultAdvent()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (a Advent) Validate() error {
	var errs []error
	if a.Parallelism < 1 {
		errs = append(errs, fmt.Errorf("parallelism must be >= 1, got %d", a.Parallelism))
	}
	if a.Rope.Knots < 1 {
		errs = append(errs, fmt.Errorf("rope.knots must be >= 1, got %d", a.Rope.Knots))
	}
	for _, d := range a.Days {
		if d < 1 || d > 25 {
			errs = append(errs, fmt.Errorf("day %d out of range 1..25", d))
		}
	}
	return errors.Join(errs...)
}

// ParseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
