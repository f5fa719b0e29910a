package calories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/advent/internal/puzzle"
)

const example = `
1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

func TestTotals(t *testing.T) {
	totals, err := Totals(example)
	require.NoError(t, err)
	assert.Equal(t, []int{6000, 4000, 11000, 24000, 10000}, totals)
}

func TestTopSum(t *testing.T) {
	tests := []struct {
		name   string
		totals []int
		n      int
		want   int
	}{
		{"highest", []int{6000, 4000, 11000, 24000, 10000}, 1, 24000},
		{"top three", []int{6000, 4000, 11000, 24000, 10000}, 3, 45000},
		{"fewer elves than n", []int{5, 7}, 3, 12},
		{"no elves", nil, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TopSum(tt.totals, tt.n))
		})
	}
}

func TestSolve(t *testing.T) {
	answer, err := Solver{}.Solve(example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "24000", Part2: "45000"}, answer)

	bigger := "1000\n2000\n3000\n\n10000\n20000\n30000\n\n7000\n"
	answer, err = Solver{}.Solve(bigger)
	require.NoError(t, err)
	assert.Equal(t, "60000", answer.Part1)
}

func TestSolveMalformed(t *testing.T) {
	_, err := Solver{}.Solve("100\nabc\n")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
