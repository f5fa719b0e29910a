// Package crt solves day 10: a two-instruction CPU driving a CRT.
package crt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/udisondev/advent/internal/puzzle"
)

const Day = 10

const (
	ScreenWidth  = 40
	ScreenHeight = 6

	PixelLit  = '#'
	PixelDark = '.'
)

// Instruction is either a noop or an addx of Add.
type Instruction struct {
	Noop bool
	Add  int
}

// Cycles returns how many cycles the instruction takes.
func (i Instruction) Cycles() int {
	if i.Noop {
		return 1
	}
	return 2
}

// ParseProgram reads "noop" and "addx N" lines.
func ParseProgram(input string) ([]Instruction, error) {
	var prog []Instruction
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		ins, err := parseInstruction(line)
		if err != nil {
			return nil, &puzzle.ParseError{Day: Day, Line: i + 1, Text: line, Reason: err.Error()}
		}
		prog = append(prog, ins)
	}
	return prog, nil
}

func parseInstruction(line string) (Instruction, error) {
	f := strings.Fields(line)
	switch {
	case len(f) == 1 && f[0] == "noop":
		return Instruction{Noop: true}, nil
	case len(f) == 2 && f[0] == "addx":
		n, err := strconv.Atoi(f[1])
		if err != nil {
			return Instruction{}, fmt.Errorf("addx operand %q: %w", f[1], err)
		}
		return Instruction{Add: n}, nil
	default:
		return Instruction{}, fmt.Errorf("unknown instruction")
	}
}

// Run calls during for every cycle (1-based) with the X register value held
// during that cycle. X starts at 1; addx updates it after its second cycle.
func Run(prog []Instruction, during func(cycle, x int)) {
	cycle, x := 0, 1
	for _, ins := range prog {
		for range ins.Cycles() {
			cycle++
			during(cycle, x)
		}
		x += ins.Add
	}
}

// SignalStrength sums cycle*X at cycles 20, 60, 100, ...
func SignalStrength(prog []Instruction) int {
	total := 0
	Run(prog, func(cycle, x int) {
		if (cycle-20)%40 == 0 {
			total += cycle * x
		}
	})
	return total
}

// Render draws the CRT: the pixel at column (cycle-1)%40 is lit when the
// 3-wide sprite centred on X covers it. Rows are joined with '\n'.
func Render(prog []Instruction) string {
	var rows []string
	var row strings.Builder
	Run(prog, func(cycle, x int) {
		col := (cycle - 1) % ScreenWidth
		if col-x >= -1 && col-x <= 1 {
			row.WriteByte(PixelLit)
		} else {
			row.WriteByte(PixelDark)
		}
		if col == ScreenWidth-1 {
			rows = append(rows, row.String())
			row.Reset()
		}
	})
	if row.Len() > 0 {
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

// Solver solves day 10. Part 2 is the rendered screen.
type Solver struct{}

func (Solver) Day() int      { return Day }
func (Solver) Title() string { return "Cathode-Ray Tube" }

func (Solver) Solve(input string) (puzzle.Answer, error) {
	prog, err := ParseProgram(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1: strconv.Itoa(SignalStrength(prog)),
		Part2: Render(prog),
	}, nil
}
