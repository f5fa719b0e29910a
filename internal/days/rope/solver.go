package rope

import (
	"github.com/udisondev/advent/internal/puzzle"
)

// DefaultKnots is the chain length of the second part.
const DefaultKnots = 10

// Solver solves the rope bridge day.
type Solver struct {
	// Knots is the chain length for part 2; zero means DefaultKnots.
	Knots int
}

func (s Solver) Day() int      { return Day }
func (s Solver) Title() string { return "Rope Bridge" }

// Solve counts distinct tail positions for a 2-link chain and for a Knots-link chain.
func (s Solver) Solve(input string) (puzzle.Answer, error) {
	knots := s.Knots
	if knots == 0 {
		knots = DefaultKnots
	}

	moves, err := DecodeInput(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	head := Track(moves)

	short, err := CountTailPositions(head, 2)
	if err != nil {
		return puzzle.Answer{}, err
	}
	long, err := CountTailPositions(head, knots)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Ints(short, long), nil
}
