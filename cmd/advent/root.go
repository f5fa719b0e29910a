package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/udisondev/advent/internal/config"
	"github.com/udisondev/advent/internal/days/calories"
	"github.com/udisondev/advent/internal/days/cleanup"
	"github.com/udisondev/advent/internal/days/crates"
	"github.com/udisondev/advent/internal/days/crt"
	"github.com/udisondev/advent/internal/days/rochambeau"
	"github.com/udisondev/advent/internal/days/rope"
	"github.com/udisondev/advent/internal/days/rucksack"
	"github.com/udisondev/advent/internal/days/termfs"
	"github.com/udisondev/advent/internal/days/treetop"
	"github.com/udisondev/advent/internal/puzzle"
)

// app carries state shared by subcommands after PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Advent
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "advent",
		Short:         "Advent of Code 2022 puzzle solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", config.Path(), "path to YAML config")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	root.AddCommand(
		newSolveCmd(a),
		newListCmd(a),
		newRopeCmd(a),
	)
	return root
}

func (a *app) init(logOut io.Writer) error {
	cfg, err := config.LoadAdvent(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	a.cfg = cfg

	a.logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(a.logger)

	a.logger.Debug("config loaded",
		"path", a.configPath,
		"input_dir", cfg.InputDir,
		"parallelism", cfg.Parallelism,
		"rope_knots", cfg.Rope.Knots)
	return nil
}

// registry wires every day solver.
func (a *app) registry() (*puzzle.Registry, error) {
	return puzzle.NewRegistry(
		calories.Solver{},
		rochambeau.Solver{},
		rucksack.Solver{},
		cleanup.Solver{},
		crates.Solver{},
		termfs.Solver{},
		treetop.Solver{},
		rope.Solver{Knots: a.cfg.Rope.Knots},
		crt.Solver{},
	)
}
