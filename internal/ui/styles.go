// Package ui renders solver results and rope frames for the terminal.
package ui

import "github.com/charmbracelet/lipgloss"

// Styles groups every lipgloss style used by the CLI.
type Styles struct {
	Title   lipgloss.Style
	Day     lipgloss.Style
	Name    lipgloss.Style
	Answer  lipgloss.Style
	Elapsed lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Screen  lipgloss.Style

	Head  lipgloss.Style
	Tail  lipgloss.Style
	Link  lipgloss.Style
	Start lipgloss.Style
}

// NewStyles creates the default style set.
func NewStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffcc00")).
			Bold(true).
			MarginBottom(1),
		Day: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00cc00")).
			Bold(true).
			Width(8),
		Name: lipgloss.NewStyle().
			Width(26),
		Answer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Width(14),
		Elapsed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5555")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")),
		Screen: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1),

		Head:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555")).Bold(true),
		Tail:  lipgloss.NewStyle().Foreground(lipgloss.Color("#55ff55")).Bold(true),
		Link:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00")),
		Start: lipgloss.NewStyle().Foreground(lipgloss.Color("#5599ff")),
	}
}
