package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/udisondev/advent/internal/puzzle"
)

// RenderResults formats one line per day. Multi-line answers are drawn
// in a box under their day.
func RenderResults(s Styles, results []puzzle.Result) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("Advent of Code 2022"))
	b.WriteByte('\n')

	for _, r := range results {
		day := s.Day.Render(fmt.Sprintf("Day %d", r.Day))
		name := s.Name.Render(r.Title)

		if r.Err != nil {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, day, name, s.Error.Render(r.Err.Error())))
			b.WriteByte('\n')
			continue
		}

		var screen string
		part2 := r.Answer.Part2
		if strings.Contains(part2, "\n") {
			screen, part2 = part2, "(see below)"
		}

		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			day,
			name,
			s.Answer.Render(r.Answer.Part1),
			s.Answer.Render(part2),
			s.Elapsed.Render(r.Elapsed.Round(time.Microsecond).String()),
		))
		b.WriteByte('\n')

		if screen != "" {
			b.WriteString(s.Screen.Render(screen))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RenderDays lists registered solvers.
func RenderDays(s Styles, solvers []puzzle.Solver) string {
	var b strings.Builder
	for _, sv := range solvers {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			s.Day.Render(fmt.Sprintf("Day %d", sv.Day())),
			s.Name.Render(sv.Title()),
		))
		b.WriteByte('\n')
	}
	return b.String()
}
