package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/udisondev/advent/internal/puzzle"
	"github.com/udisondev/advent/internal/ui"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		inputDir    string
		parallelism int
	)

	cmd := &cobra.Command{
		Use:   "solve [day...]",
		Short: "Solve puzzle days",
		Long: `Solves the given days, or the days listed in the config, or every registered day.
Each day reads <input-dir>/dayNN.txt. Days are solved concurrently.`,
		Example: "  advent solve 9\n  advent solve --input-dir ./inputs 1 2 3",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args)
			if err != nil {
				return err
			}
			if len(days) == 0 {
				days = a.cfg.Days
			}
			if cmd.Flags().Changed("input-dir") {
				a.cfg.InputDir = inputDir
			}
			if cmd.Flags().Changed("parallel") {
				a.cfg.Parallelism = parallelism
			}

			reg, err := a.registry()
			if err != nil {
				return err
			}

			runner := &puzzle.Runner{
				Registry:    reg,
				InputDir:    a.cfg.InputDir,
				Parallelism: a.cfg.Parallelism,
				Logger:      a.logger,
			}
			results, err := runner.Run(cmd.Context(), days)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), ui.RenderResults(ui.NewStyles(), results))

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d days failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inputDir, "input-dir", "", "directory with dayNN.txt inputs (overrides config)")
	cmd.Flags().IntVar(&parallelism, "parallel", 0, "days solved at the same time (overrides config)")
	return cmd
}

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, arg := range args {
		d, err := strconv.Atoi(arg)
		if err != nil || d < 1 || d > 25 {
			return nil, fmt.Errorf("invalid day %q: want 1..25", arg)
		}
		days = append(days, d)
	}
	return days, nil
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			var solvers []puzzle.Solver
			for _, d := range reg.Days() {
				s, err := reg.Get(d)
				if err != nil {
					return err
				}
				solvers = append(solvers, s)
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.RenderDays(ui.NewStyles(), solvers))
			return nil
		},
	}
}
