package puzzle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of solving one day.
type Result struct {
	Day     int
	Title   string
	Answer  Answer
	Elapsed time.Duration
	Err     error
}

// Runner loads inputs and solves days concurrently.
// Each day is solved in its own goroutine; days never share state.
type Runner struct {
	Registry    *Registry
	InputDir    string
	Parallelism int
	Logger      *slog.Logger
}

// Run solves the requested days (all registered days when empty).
// A failing day is reported in its Result and does not stop the others.
// The returned error is non-nil only for unknown days or context cancellation.
func (r *Runner) Run(ctx context.Context, days []int) ([]Result, error) {
	if len(days) == 0 {
		days = r.Registry.Days()
	}

	solvers := make([]Solver, len(days))
	for i, d := range days {
		s, err := r.Registry.Get(d)
		if err != nil {
			return nil, err
		}
		solvers[i] = s
	}

	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	results := make([]Result, len(solvers))
	g, ctx := errgroup.WithContext(ctx)
	if r.Parallelism > 0 {
		g.SetLimit(r.Parallelism)
	}

	for i, s := range solvers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.solve(s, logger)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("running days: %w", err)
	}
	return results, nil
}

func (r *Runner) solve(s Solver, logger *slog.Logger) Result {
	res := Result{Day: s.Day(), Title: s.Title()}

	input, err := LoadInput(r.InputDir, s.Day())
	if err != nil {
		res.Err = err
		logger.Warn("input unavailable", "day", s.Day(), "err", err)
		return res
	}

	start := time.Now()
	res.Answer, res.Err = s.Solve(input)
	res.Elapsed = time.Since(start)

	if res.Err != nil {
		logger.Error("solve failed", "day", s.Day(), "err", res.Err)
		return res
	}
	logger.Debug("day solved", "day", s.Day(), "elapsed", res.Elapsed)
	return res
}
