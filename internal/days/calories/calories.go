// Package calories solves day 1: calorie totals carried by each elf.
package calories

import (
	"slices"
	"strconv"
	"strings"

	"github.com/udisondev/advent/internal/puzzle"
)

const Day = 1

// Totals returns the calorie total of each elf, in input order.
// Elves are separated by blank lines.
func Totals(input string) ([]int, error) {
	var totals []int
	current, open := 0, false

	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			if open {
				totals = append(totals, current)
				current, open = 0, false
			}
			continue
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 0 {
			return nil, &puzzle.ParseError{Day: Day, Line: i + 1, Text: line, Reason: "not a calorie count"}
		}
		current += n
		open = true
	}
	if open {
		totals = append(totals, current)
	}
	return totals, nil
}

// TopSum returns the sum of the n largest totals.
// When there are fewer than n elves every total is summed.
func TopSum(totals []int, n int) int {
	sorted := slices.Clone(totals)
	slices.SortFunc(sorted, func(a, b int) int { return b - a })

	sum := 0
	for _, t := range sorted[:min(n, len(sorted))] {
		sum += t
	}
	return sum
}

// Solver solves day 1.
type Solver struct{}

func (Solver) Day() int      { return Day }
func (Solver) Title() string { return "Calorie Counting" }

func (Solver) Solve(input string) (puzzle.Answer, error) {
	totals, err := Totals(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Ints(TopSum(totals, 1), TopSum(totals, 3)), nil
}
