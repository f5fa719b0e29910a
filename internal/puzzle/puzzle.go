// Package puzzle defines the contract between the CLI and the daily solvers:
// the Solver interface, a registry keyed by day, input loading and a runner
// that solves several independent days at once.
package puzzle

import "strconv"

// Solver solves one puzzle day from its full text input.
// Implementations are pure: no I/O, no shared state.
type Solver interface {
	Day() int
	Title() string
	Solve(input string) (Answer, error)
}

// Answer holds both parts of a day's answer rendered as text.
// Part2 may span several lines (e.g. a rendered CRT image).
type Answer struct {
	Part1 string
	Part2 string
}

// Ints builds an Answer from two integers.
func Ints(part1, part2 int) Answer {
	return Answer{Part1: strconv.Itoa(part1), Part2: strconv.Itoa(part2)}
}
