package geo

import "fmt"

// Grid is a dense rectangular grid stored row-major.
// Row 0 is the first row of the input (top of the screen).
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// NewGrid allocates a width x height grid filled with fill.
func NewGrid[T any](width, height int, fill T) *Grid[T] {
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[T]{width: width, height: height, cells: cells}
}

// GridFromRows builds a grid from equally long rows.
func GridFromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return &Grid[T]{}, nil
	}
	width := len(rows[0])
	g := &Grid[T]{width: width, height: len(rows), cells: make([]T, 0, width*len(rows))}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), width)
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// In reports whether (x, y) is inside the grid.
func (g *Grid[T]) In(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at column x, row y. Panics when out of range.
func (g *Grid[T]) At(x, y int) T {
	return g.cells[y*g.width+x]
}

// Set stores v at column x, row y. Panics when out of range.
func (g *Grid[T]) Set(x, y int, v T) {
	g.cells[y*g.width+x] = v
}

// Row returns a copy of row y.
func (g *Grid[T]) Row(y int) []T {
	row := make([]T, g.width)
	copy(row, g.cells[y*g.width:(y+1)*g.width])
	return row
}
