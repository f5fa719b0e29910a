package rope

import (
	"fmt"

	"github.com/udisondev/advent/internal/geo"
)

// Direction is one of the four move directions of the head.
type Direction uint8

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// Displacement is a unit step of the head. Up is +Y, Right is +X.
type Displacement geo.Point

var unitSteps = map[Direction]Displacement{
	Up:    {X: 0, Y: 1},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// ParseDirection decodes a case-sensitive direction token.
func ParseDirection(token string) (Direction, error) {
	switch token {
	case "U":
		return Up, nil
	case "D":
		return Down, nil
	case "L":
		return Left, nil
	case "R":
		return Right, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", token)
	}
}

// Step returns the unit displacement of d.
func (d Direction) Step() Displacement {
	return unitSteps[d]
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}
