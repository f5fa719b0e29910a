package rope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/advent/internal/puzzle"
)

func TestDecodeMoves(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []Displacement
	}{
		{
			name:  "counts expand in order",
			lines: []string{"R 2", "U 1", "L 1", "D 1"},
			want:  []Displacement{{1, 0}, {1, 0}, {0, 1}, {-1, 0}, {0, -1}},
		},
		{
			name:  "zero count adds nothing",
			lines: []string{"R 0", "U 1"},
			want:  []Displacement{{0, 1}},
		},
		{
			name:  "blank lines and indentation ignored",
			lines: []string{"", "   L 2", "\t", "R 1  "},
			want:  []Displacement{{-1, 0}, {-1, 0}, {1, 0}},
		},
		{
			name:  "empty input",
			lines: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeMoves(tt.lines)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeMovesMalformed(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		wantLine int
	}{
		{"unknown direction", []string{"X 5"}, 1},
		{"lower-case direction", []string{"r 3"}, 1},
		{"missing count", []string{"R 1", "U"}, 2},
		{"negative count", []string{"R -1"}, 1},
		{"explicit plus sign", []string{"R +1"}, 1},
		{"not a number", []string{"R five"}, 1},
		{"extra field", []string{"R 3 4"}, 1},
		{"line number counts blanks", []string{"R 1", "", "Q 2"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves, err := DecodeMoves(tt.lines)
			require.Error(t, err)
			assert.Nil(t, moves, "no partial result")
			assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

			var perr *puzzle.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, Day, perr.Day)
			assert.Equal(t, tt.wantLine, perr.Line)
		})
	}
}

func TestParseDirection(t *testing.T) {
	for token, want := range map[string]Direction{"U": Up, "D": Down, "L": Left, "R": Right} {
		got, err := ParseDirection(token)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, token, got.String())
	}

	_, err := ParseDirection("UP")
	assert.Error(t, err)
}

func TestDirectionStep(t *testing.T) {
	assert.Equal(t, Displacement{0, 1}, Up.Step())
	assert.Equal(t, Displacement{0, -1}, Down.Step())
	assert.Equal(t, Displacement{-1, 0}, Left.Step())
	assert.Equal(t, Displacement{1, 0}, Right.Step())
}
