// Package rochambeau solves day 2: a rock-paper-scissors strategy guide.
package rochambeau

import (
	"fmt"
	"strings"

	"github.com/udisondev/advent/internal/puzzle"
)

const Day = 2

// Shape is a hand shape. Its value is also its score.
type Shape int

const (
	Rock     Shape = 1
	Paper    Shape = 2
	Scissors Shape = 3
)

// Outcome is the round result from our side. Its value is its score.
type Outcome int

const (
	Lose Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

// Beats returns the shape s defeats.
func (s Shape) Beats() Shape {
	return Shape((int(s)+1)%3 + 1)
}

// Play returns the outcome of s against opponent.
func (s Shape) Play(opponent Shape) Outcome {
	switch {
	case s == opponent:
		return Draw
	case s.Beats() == opponent:
		return Win
	default:
		return Lose
	}
}

// ForOutcome returns the shape to play against opponent to get o.
func ForOutcome(opponent Shape, o Outcome) Shape {
	switch o {
	case Draw:
		return opponent
	case Lose:
		return opponent.Beats()
	default:
		// the shape that beats opponent is the one opponent's victim beats
		return opponent.Beats().Beats()
	}
}

// Round is one line of the guide: the opponent's letter and our column letter.
type Round struct {
	Opponent Shape
	Column   byte // 'X', 'Y' or 'Z'
}

// ParseGuide reads "A Y" style lines.
func ParseGuide(input string) ([]Round, error) {
	var rounds []Round
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		r, err := parseRound(line)
		if err != nil {
			return nil, &puzzle.ParseError{Day: Day, Line: i + 1, Text: line, Reason: err.Error()}
		}
		rounds = append(rounds, r)
	}
	return rounds, nil
}

func parseRound(line string) (Round, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 || len(fields[0]) != 1 || len(fields[1]) != 1 {
		return Round{}, fmt.Errorf("expected two single letters")
	}
	opp := fields[0][0]
	if opp < 'A' || opp > 'C' {
		return Round{}, fmt.Errorf("unexpected opponent %q, want A, B or C", opp)
	}
	col := fields[1][0]
	if col < 'X' || col > 'Z' {
		return Round{}, fmt.Errorf("unexpected column %q, want X, Y or Z", col)
	}
	return Round{Opponent: Shape(opp - 'A' + 1), Column: col}, nil
}

// ScoreAsShapes scores the guide reading X/Y/Z as rock/paper/scissors.
func ScoreAsShapes(rounds []Round) int {
	total := 0
	for _, r := range rounds {
		mine := Shape(r.Column - 'X' + 1)
		total += int(mine) + int(mine.Play(r.Opponent))
	}
	return total
}

// ScoreAsOutcomes scores the guide reading X/Y/Z as lose/draw/win.
func ScoreAsOutcomes(rounds []Round) int {
	total := 0
	for _, r := range rounds {
		o := Outcome(int(r.Column-'X') * 3)
		total += int(ForOutcome(r.Opponent, o)) + int(o)
	}
	return total
}

// Solver solves day 2.
type Solver struct{}

func (Solver) Day() int      { return Day }
func (Solver) Title() string { return "Rock Paper Scissors" }

func (Solver) Solve(input string) (puzzle.Answer, error) {
	rounds, err := ParseGuide(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Ints(ScoreAsShapes(rounds), ScoreAsOutcomes(rounds)), nil
}
