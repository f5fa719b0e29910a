// Package crates solves day 5: rearranging stacks of crates.
package crates

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/udisondev/advent/internal/puzzle"
)

const Day = 5

// Stacks holds crate columns, bottom first.
type Stacks [][]byte

// Clone returns a deep copy.
func (s Stacks) Clone() Stacks {
	c := make(Stacks, len(s))
	for i, col := range s {
		c[i] = slices.Clone(col)
	}
	return c
}

// Tops returns the top crate of every stack; empty stacks are skipped.
func (s Stacks) Tops() string {
	var b strings.Builder
	for _, col := range s {
		if len(col) > 0 {
			b.WriteByte(col[len(col)-1])
		}
	}
	return b.String()
}

// Move is one rearrangement step. From and To are 0-based.
type Move struct {
	Quantity int
	From     int
	To       int
}

// Crane applies moves to stacks.
type Crane int

const (
	// CrateMover9000 lifts one crate at a time, reversing the moved block.
	CrateMover9000 Crane = 9000
	// CrateMover9001 lifts the whole block at once, keeping its order.
	CrateMover9001 Crane = 9001
)

// Apply runs moves on a copy of stacks and returns the result.
func (c Crane) Apply(stacks Stacks, moves []Move) (Stacks, error) {
	out := stacks.Clone()
	for i, m := range moves {
		if m.From < 0 || m.From >= len(out) || m.To < 0 || m.To >= len(out) {
			return nil, fmt.Errorf("move %d: stack out of range", i+1)
		}
		src := out[m.From]
		if m.Quantity > len(src) {
			return nil, fmt.Errorf("move %d: %d crates requested, stack %d holds %d", i+1, m.Quantity, m.From+1, len(src))
		}

		cut := len(src) - m.Quantity
		block := slices.Clone(src[cut:])
		if c == CrateMover9000 {
			slices.Reverse(block)
		}
		out[m.From] = src[:cut]
		out[m.To] = append(out[m.To], block...)
	}
	return out, nil
}

// Parse splits input into the starting drawing and the move list.
func Parse(input string) (Stacks, []Move, error) {
	lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")

	sep := slices.IndexFunc(lines, func(l string) bool { return strings.TrimSpace(l) == "" })
	// leading blank lines are not the separator
	for sep == 0 && len(lines) > 0 {
		lines = lines[1:]
		sep = slices.IndexFunc(lines, func(l string) bool { return strings.TrimSpace(l) == "" })
	}
	if sep < 1 {
		return nil, nil, &puzzle.ParseError{Day: Day, Reason: "missing blank line between drawing and moves"}
	}

	stacks, err := parseDrawing(lines[:sep])
	if err != nil {
		return nil, nil, err
	}

	var moves []Move
	for i := sep + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		m, err := parseMove(line)
		if err != nil {
			return nil, nil, &puzzle.ParseError{Day: Day, Line: i + 1, Text: line, Reason: err.Error()}
		}
		moves = append(moves, m)
	}
	return stacks, moves, nil
}

func parseDrawing(lines []string) (Stacks, error) {
	labels := strings.Fields(lines[len(lines)-1])
	if len(labels) == 0 {
		return nil, &puzzle.ParseError{Day: Day, Line: len(lines), Reason: "missing stack numbers"}
	}
	for i, l := range labels {
		if l != strconv.Itoa(i+1) {
			return nil, &puzzle.ParseError{Day: Day, Line: len(lines), Text: lines[len(lines)-1], Reason: "stack numbers must be 1..N"}
		}
	}

	stacks := make(Stacks, len(labels))
	for row := len(lines) - 2; row >= 0; row-- {
		line := lines[row]
		for col := range stacks {
			pos := 1 + col*4
			if pos >= len(line) {
				break
			}
			if c := rune(line[pos]); unicode.IsLetter(c) {
				stacks[col] = append(stacks[col], line[pos])
			}
		}
	}
	return stacks, nil
}

func parseMove(line string) (Move, error) {
	f := strings.Fields(line)
	if len(f) != 6 || f[0] != "move" || f[2] != "from" || f[4] != "to" {
		return Move{}, fmt.Errorf("expected \"move N from A to B\"")
	}
	var nums [3]int
	for i, s := range []string{f[1], f[3], f[5]} {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return Move{}, fmt.Errorf("%q is not a non-negative number", s)
		}
		nums[i] = n
	}
	if nums[1] == 0 || nums[2] == 0 {
		return Move{}, fmt.Errorf("stacks are numbered from 1")
	}
	return Move{Quantity: nums[0], From: nums[1] - 1, To: nums[2] - 1}, nil
}

// Solver solves day 5.
type Solver struct{}

func (Solver) Day() int      { return Day }
func (Solver) Title() string { return "Supply Stacks" }

func (Solver) Solve(input string) (puzzle.Answer, error) {
	stacks, moves, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	var answer puzzle.Answer
	for _, part := range []struct {
		crane Crane
		dst   *string
	}{
		{CrateMover9000, &answer.Part1},
		{CrateMover9001, &answer.Part2},
	} {
		final, err := part.crane.Apply(stacks, moves)
		if err != nil {
			return puzzle.Answer{}, &puzzle.ParseError{Day: Day, Reason: err.Error()}
		}
		*part.dst = final.Tops()
	}
	return answer, nil
}
