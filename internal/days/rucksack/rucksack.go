// Package rucksack solves day 3: misplaced items and group badges.
package rucksack

import (
	"strings"

	"github.com/udisondev/advent/internal/puzzle"
)

const Day = 3

// Priority returns 1-26 for a-z and 27-52 for A-Z, 0 for anything else.
func Priority(item byte) int {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27
	default:
		return 0
	}
}

// itemSet is a bitmask over the 52 item kinds, indexed by priority.
type itemSet uint64

func setOf(s string) itemSet {
	var set itemSet
	for i := 0; i < len(s); i++ {
		set |= 1 << Priority(s[i])
	}
	return set
}

func (s itemSet) prioritySum() int {
	sum := 0
	for p := 1; p <= 52; p++ {
		if s&(1<<p) != 0 {
			sum += p
		}
	}
	return sum
}

// Shared returns the distinct items present in both halves, in order of priority.
func Shared(left, right string) []byte {
	common := setOf(left) & setOf(right)
	var items []byte
	for p := 1; p <= 52; p++ {
		if common&(1<<p) == 0 {
			continue
		}
		if p <= 26 {
			items = append(items, byte('a'+p-1))
		} else {
			items = append(items, byte('A'+p-27))
		}
	}
	return items
}

// ParseRucksacks returns the non-blank lines, validating the item alphabet
// and that every rucksack splits into two equal compartments.
func ParseRucksacks(input string) ([]string, error) {
	var sacks []string
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if len(line)%2 != 0 {
			return nil, &puzzle.ParseError{Day: Day, Line: i + 1, Text: line, Reason: "odd number of items"}
		}
		for j := 0; j < len(line); j++ {
			if Priority(line[j]) == 0 {
				return nil, &puzzle.ParseError{Day: Day, Line: i + 1, Text: line, Reason: "items must be letters"}
			}
		}
		sacks = append(sacks, line)
	}
	return sacks, nil
}

// CompartmentPriority sums the priorities of items found in both compartments.
func CompartmentPriority(sacks []string) int {
	total := 0
	for _, s := range sacks {
		half := len(s) / 2
		total += (setOf(s[:half]) & setOf(s[half:])).prioritySum()
	}
	return total
}

// BadgePriority sums the priority of the item common to each group of three.
// An incomplete trailing group is ignored.
func BadgePriority(sacks []string) int {
	total := 0
	for i := 0; i+3 <= len(sacks); i += 3 {
		common := setOf(sacks[i]) & setOf(sacks[i+1]) & setOf(sacks[i+2])
		total += common.prioritySum()
	}
	return total
}

// Solver solves day 3.
type Solver struct{}

func (Solver) Day() int      { return Day }
func (Solver) Title() string { return "Rucksack Reorganization" }

func (Solver) Solve(input string) (puzzle.Answer, error) {
	sacks, err := ParseRucksacks(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Ints(CompartmentPriority(sacks), BadgePriority(sacks)), nil
}
