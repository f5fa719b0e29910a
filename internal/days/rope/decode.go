package rope

import (
	"strconv"
	"strings"

	"github.com/udisondev/advent/internal/puzzle"
)

// Day is the puzzle day of the rope simulation.
const Day = 9

// DecodeMoves turns "<DIR> <COUNT>" lines into a flat list of unit steps,
// COUNT copies per line, in input order.
// Blank lines are skipped. Any malformed line aborts the decode with *puzzle.ParseError.
func DecodeMoves(lines []string) ([]Displacement, error) {
	var moves []Displacement
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		dir, count, err := decodeLine(line)
		if err != nil {
			return nil, &puzzle.ParseError{Day: Day, Line: i + 1, Text: line, Reason: err.Error()}
		}

		step := dir.Step()
		for range count {
			moves = append(moves, step)
		}
	}
	return moves, nil
}

// DecodeInput splits input into lines and decodes them.
func DecodeInput(input string) ([]Displacement, error) {
	return DecodeMoves(strings.Split(input, "\n"))
}

func decodeLine(line string) (Direction, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, errFieldCount(len(fields))
	}

	dir, err := ParseDirection(fields[0])
	if err != nil {
		return 0, 0, err
	}

	// ParseUint rejects signs, so "-3" and "+3" both fail here.
	count, err := strconv.ParseUint(fields[1], 10, 31)
	if err != nil {
		return 0, 0, errBadCount(fields[1])
	}
	return dir, int(count), nil
}
