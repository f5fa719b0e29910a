package ui

import (
	"strings"

	"github.com/udisondev/advent/internal/days/rope"
)

// RenderFrame colours a rope frame: head, last link, other links and the start.
func RenderFrame(s Styles, rows []string, links int) string {
	tail := rope.Label(links - 1)

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, r := range row {
			cell := string(r)
			switch {
			case r == rope.CellEmpty:
				b.WriteString(s.Muted.Render(cell))
			case r == rope.CellHead:
				b.WriteString(s.Head.Render(cell))
			case r == rope.CellStart:
				b.WriteString(s.Start.Render(cell))
			case r == tail:
				b.WriteString(s.Tail.Render(cell))
			default:
				b.WriteString(s.Link.Render(cell))
			}
		}
	}
	return b.String()
}
