// Package treetop solves day 8: tree visibility in a height map.
package treetop

import (
	"strings"

	"github.com/udisondev/advent/internal/geo"
	"github.com/udisondev/advent/internal/puzzle"
)

const Day = 8

// Forest is a grid of tree heights 0-9.
type Forest struct {
	*geo.Grid[int]
}

var lookDirections = []geo.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

// ParseForest reads one row of digits per line; rows must be equally long.
func ParseForest(input string) (Forest, error) {
	var rows [][]int
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		row := make([]int, len(line))
		for j := 0; j < len(line); j++ {
			if line[j] < '0' || line[j] > '9' {
				return Forest{}, &puzzle.ParseError{Day: Day, Line: i + 1, Text: line, Reason: "heights must be digits"}
			}
			row[j] = int(line[j] - '0')
		}
		rows = append(rows, row)
	}

	g, err := geo.GridFromRows(rows)
	if err != nil {
		return Forest{}, &puzzle.ParseError{Day: Day, Reason: err.Error()}
	}
	return Forest{Grid: g}, nil
}

// look walks from (x, y) along d and returns how many trees are seen and
// whether the view reaches the edge unblocked.
func (f Forest) look(x, y int, d geo.Point) (seen int, clear bool) {
	h := f.At(x, y)
	for cx, cy := x+d.X, y+d.Y; f.In(cx, cy); cx, cy = cx+d.X, cy+d.Y {
		seen++
		if f.At(cx, cy) >= h {
			return seen, false
		}
	}
	return seen, true
}

// Visible reports whether the tree at (x, y) can be seen from outside the grid.
func (f Forest) Visible(x, y int) bool {
	for _, d := range lookDirections {
		if _, clear := f.look(x, y, d); clear {
			return true
		}
	}
	return false
}

// ScenicScore multiplies the viewing distances in the four directions.
func (f Forest) ScenicScore(x, y int) int {
	score := 1
	for _, d := range lookDirections {
		seen, _ := f.look(x, y, d)
		score *= seen
	}
	return score
}

// CountVisible counts trees visible from outside; edge trees always are.
func (f Forest) CountVisible() int {
	n := 0
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if f.Visible(x, y) {
				n++
			}
		}
	}
	return n
}

// BestScenicScore returns the highest scenic score in the forest.
func (f Forest) BestScenicScore() int {
	best := 0
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			best = max(best, f.ScenicScore(x, y))
		}
	}
	return best
}

// Solver solves day 8.
type Solver struct{}

func (Solver) Day() int      { return Day }
func (Solver) Title() string { return "Treetop Tree House" }

func (Solver) Solve(input string) (puzzle.Answer, error) {
	f, err := ParseForest(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Ints(f.CountVisible(), f.BestScenicScore()), nil
}
