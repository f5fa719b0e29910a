// Package cleanup solves day 4: overlapping section assignments.
package cleanup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/udisondev/advent/internal/puzzle"
)

const Day = 4

// Range is an inclusive section range.
type Range struct {
	Start int
	End   int
}

// Contains reports whether o lies entirely within r.
func (r Range) Contains(o Range) bool {
	return r.Start <= o.Start && o.End <= r.End
}

// Overlaps reports whether r and o share at least one section.
func (r Range) Overlaps(o Range) bool {
	return r.Start <= o.End && o.Start <= r.End
}

// Pair is one line of assignments.
type Pair struct {
	First  Range
	Second Range
}

// ParsePairs reads "2-4,6-8" lines. Spaces around numbers are tolerated.
func ParsePairs(input string) ([]Pair, error) {
	var pairs []Pair
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		p, err := parsePair(line)
		if err != nil {
			return nil, &puzzle.ParseError{Day: Day, Line: i + 1, Text: line, Reason: err.Error()}
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func parsePair(line string) (Pair, error) {
	left, right, ok := strings.Cut(line, ",")
	if !ok {
		return Pair{}, fmt.Errorf("missing comma")
	}
	first, err := parseRange(left)
	if err != nil {
		return Pair{}, err
	}
	second, err := parseRange(right)
	if err != nil {
		return Pair{}, err
	}
	return Pair{First: first, Second: second}, nil
}

func parseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Range{}, fmt.Errorf("range %q: missing dash", s)
	}
	start, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	if end < start {
		return Range{}, fmt.Errorf("range %q ends before it starts", s)
	}
	return Range{Start: start, End: end}, nil
}

// CountContained counts pairs where one range fully contains the other.
func CountContained(pairs []Pair) int {
	n := 0
	for _, p := range pairs {
		if p.First.Contains(p.Second) || p.Second.Contains(p.First) {
			n++
		}
	}
	return n
}

// CountOverlapping counts pairs whose ranges overlap at all.
func CountOverlapping(pairs []Pair) int {
	n := 0
	for _, p := range pairs {
		if p.First.Overlaps(p.Second) {
			n++
		}
	}
	return n
}

// Solver solves day 4.
type Solver struct{}

func (Solver) Day() int      { return Day }
func (Solver) Title() string { return "Camp Cleanup" }

func (Solver) Solve(input string) (puzzle.Answer, error) {
	pairs, err := ParsePairs(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Ints(CountContained(pairs), CountOverlapping(pairs)), nil
}
