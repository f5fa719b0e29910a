package cleanup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/advent/internal/puzzle"
)

const example = `2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8`

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Range
		want bool
	}{
		{"full containment", Range{2, 8}, Range{3, 7}, true},
		{"contained", Range{3, 7}, Range{2, 8}, true},
		{"partial left", Range{2, 5}, Range{3, 7}, true},
		{"touching end", Range{3, 7}, Range{6, 8}, true},
		{"disjoint after", Range{2, 8}, Range{10, 14}, false},
		{"disjoint before", Range{3, 7}, Range{0, 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Range{2, 8}.Contains(Range{3, 7}))
	assert.True(t, Range{4, 6}.Contains(Range{6, 6}))
	assert.False(t, Range{3, 7}.Contains(Range{2, 8}))
}

func TestSolve(t *testing.T) {
	answer, err := Solver{}.Solve(example)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: "2", Part2: "4"}, answer)
}

func TestSolveToleratesSpaces(t *testing.T) {
	input := "2-4,6-8\n2-3,4-5\n5-7,7-9\n2-8,3-7\n4-4, 2-7\n6-6,4-6\n2-6,4-8"

	answer, err := Solver{}.Solve(input)
	require.NoError(t, err)
	assert.Equal(t, "5", answer.Part2)
}

func TestSolveMalformed(t *testing.T) {
	for _, input := range []string{"2-4", "2-4,6", "a-4,6-8", "5-2,1-1"} {
		_, err := Solver{}.Solve(input)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, input)
	}
}
