package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/udisondev/advent/internal/days/rope"
	"github.com/udisondev/advent/internal/ui"
)

func newRopeCmd(a *app) *cobra.Command {
	var (
		knots   int
		step    int
		replay  bool
		visited bool
	)

	cmd := &cobra.Command{
		Use:   "rope <file>",
		Short: "Draw the rope simulation",
		Long: `Simulates the rope from a move list and draws it.
By default the final step is drawn; --step picks another one, --visited draws
every position of the last link, --replay opens an interactive player.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("knots") {
				knots = a.cfg.Rope.Knots
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading moves: %w", err)
			}
			moves, err := rope.DecodeInput(string(data))
			if err != nil {
				return err
			}
			chain, err := rope.BuildChain(rope.Track(moves), knots)
			if err != nil {
				return err
			}
			a.logger.Debug("rope simulated", "moves", len(moves), "knots", knots, "tail_positions", chain[len(chain)-1].Distinct())

			styles := ui.NewStyles()
			if replay {
				_, err := tea.NewProgram(ui.NewReplay(chain, styles), tea.WithContext(cmd.Context())).Run()
				return err
			}

			out := cmd.OutOrStdout()
			if visited {
				fmt.Fprintln(out, strings.Join(chain.Visited(), "\n"))
				fmt.Fprintf(out, "%d positions visited\n", chain[len(chain)-1].Distinct())
				return nil
			}

			if step < 0 {
				step = chain.Steps() - 1
			}
			if step >= chain.Steps() {
				return fmt.Errorf("step %d out of range 0..%d", step, chain.Steps()-1)
			}
			fmt.Fprintln(out, ui.RenderFrame(styles, chain.Frame(step), len(chain)))
			return nil
		},
	}

	cmd.Flags().IntVar(&knots, "knots", rope.DefaultKnots, "links in the chain, head included")
	cmd.Flags().IntVar(&step, "step", -1, "time step to draw (default: last)")
	cmd.Flags().BoolVar(&replay, "replay", false, "step through the simulation interactively")
	cmd.Flags().BoolVar(&visited, "visited", false, "draw every position visited by the last link")
	return cmd
}
