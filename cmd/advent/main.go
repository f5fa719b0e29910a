/*
advent runs the Advent of Code 2022 puzzle solvers.

Usage:

	advent solve [day...]     Solve days (all registered days by default)
	advent list               List registered days
	advent rope <file>        Draw or replay the rope simulation

Inputs are read from <input_dir>/dayNN.txt. Configuration is loaded from
config/advent.yaml, or from the path in ADVENT_CONFIG.
*/
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("fatal", "err", err)
		cancel()
		os.Exit(1)
	}
}
