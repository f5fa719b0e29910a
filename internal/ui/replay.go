package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/udisondev/advent/internal/days/rope"
)

// DefaultTickInterval is the playback speed of the replay.
const DefaultTickInterval = 80 * time.Millisecond

type tickMsg struct{}

// Replay steps through a rope chain frame by frame.
//
//	→ / n      next step
//	← / p      previous step
//	home / end first / last step
//	space      play / pause
//	q / ctrl+c quit
type Replay struct {
	chain    rope.Chain
	styles   Styles
	step     int
	playing  bool
	interval time.Duration
}

// NewReplay creates a paused replay at step 0.
func NewReplay(chain rope.Chain, styles Styles) Replay {
	return Replay{chain: chain, styles: styles, interval: DefaultTickInterval}
}

// WithInterval returns a copy using d between frames while playing.
func (m Replay) WithInterval(d time.Duration) Replay {
	m.interval = d
	return m
}

// Step returns the current time step.
func (m Replay) Step() int { return m.step }

// Playing reports whether playback is running.
func (m Replay) Playing() bool { return m.playing }

func (m Replay) last() int {
	return max(m.chain.Steps()-1, 0)
}

func (m Replay) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{} })
}

// Init implements tea.Model.
func (m Replay) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Replay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.playing {
			return m, nil
		}
		if m.step >= m.last() {
			m.playing = false
			return m, nil
		}
		m.step++
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "n", "l":
			m.step = min(m.step+1, m.last())
		case "left", "p", "h":
			m.step = max(m.step-1, 0)
		case "home", "g":
			m.step = 0
		case "end", "G":
			m.step = m.last()
		case " ":
			m.playing = !m.playing
			if m.playing {
				if m.step >= m.last() {
					m.step = 0
				}
				return m, m.tick()
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Replay) View() string {
	if m.chain.Steps() == 0 {
		return m.styles.Muted.Render("empty chain") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("step %d/%d  heading %s  links %d",
		m.step, m.last(), m.chain.Heading(m.step), len(m.chain))))
	b.WriteByte('\n')
	b.WriteString(RenderFrame(m.styles, m.chain.Frame(m.step), len(m.chain)))
	b.WriteByte('\n')
	b.WriteString(m.styles.Muted.Render("←/→ step · space play · q quit"))
	b.WriteByte('\n')
	return b.String()
}
