package rope

import "github.com/udisondev/advent/internal/geo"

// Frame cell markers.
const (
	CellEmpty = '.'
	CellStart = 's'
	CellHead  = 'H'
)

// Label returns the marker drawn for link i: H for the head, then 1-9,
// then a-z, then '#'.
func Label(i int) rune {
	switch {
	case i == 0:
		return CellHead
	case i < 10:
		return rune('0' + i)
	case i < 36:
		return rune('a' + i - 10)
	default:
		return '#'
	}
}

// Frame draws the chain at step over its full bounds.
// The first row is the highest Y. A link hides the links behind it.
func (c Chain) Frame(step int) []string {
	b := c.Bounds()
	g := geo.NewGrid(b.Width(), b.Height(), rune(CellEmpty))

	put := func(p Position, r rune) {
		g.Set(p.X-b.Min.X, b.Max.Y-p.Y, r)
	}

	put(geo.Origin, CellStart)
	positions := c.At(step)
	for i := len(positions) - 1; i >= 0; i-- {
		put(positions[i], Label(i))
	}

	rows := make([]string, g.Height())
	for y := range rows {
		rows[y] = string(g.Row(y))
	}
	return rows
}

// Visited draws every position of the last link with '#', the start with 's'.
func (c Chain) Visited() []string {
	b := c.Bounds()
	g := geo.NewGrid(b.Width(), b.Height(), rune(CellEmpty))
	if len(c) > 0 {
		for _, p := range c[len(c)-1] {
			g.Set(p.X-b.Min.X, b.Max.Y-p.Y, '#')
		}
	}
	g.Set(-b.Min.X, b.Max.Y, CellStart)

	rows := make([]string, g.Height())
	for y := range rows {
		rows[y] = string(g.Row(y))
	}
	return rows
}
