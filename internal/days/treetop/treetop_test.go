package treetop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/advent/internal/puzzle"
)

const example = `30373
25512
65332
33549
35390`

func TestVisible(t *testing.T) {
	f, err := ParseForest(example)
	require.NoError(t, err)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"corner", 0, 0, true},
		{"top-left 5 seen from left and top", 1, 1, true},
		{"top-middle 5 seen from top and right", 2, 1, true},
		{"top-right 1 hidden", 3, 1, false},
		{"center 3 hidden", 2, 2, false},
		{"bottom-middle 5 seen", 2, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Visible(tt.x, tt.y))
		})
	}
}

func TestScenicScore(t *testing.T) {
	f, err := ParseForest(example)
	require.NoError(t, err)

	assert.Equal(t, 4, f.ScenicScore(2, 1))
	assert.Equal(t, 8, f.ScenicScore(2, 3))
	assert.Equal(t, 0, f.ScenicScore(0, 0), "edge trees see nothing one way")
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  puzzle.Answer
	}{
		{"example", example, puzzle.Answer{Part1: "21", Part2: "8"}},
		{"all border", "1234\n        5678", puzzle.Answer{Part1: "8", Part2: "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solver{}.Solve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSolveMalformed(t *testing.T) {
	for _, input := range []string{"12\n3", "1a\n22"} {
		_, err := Solver{}.Solve(input)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, input)
	}
}
