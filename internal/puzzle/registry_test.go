package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSolver struct {
	day    int
	answer Answer
	err    error
}

func (s stubSolver) Day() int      { return s.day }
func (s stubSolver) Title() string { return "stub" }
func (s stubSolver) Solve(string) (Answer, error) {
	return s.answer, s.err
}

func TestRegistryDaysSorted(t *testing.T) {
	r, err := NewRegistry(stubSolver{day: 9}, stubSolver{day: 1}, stubSolver{day: 4})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 4, 9}, r.Days())
}

func TestRegistryDuplicate(t *testing.T) {
	r, err := NewRegistry(stubSolver{day: 2})
	require.NoError(t, err)

	err = r.Register(stubSolver{day: 2})
	assert.ErrorIs(t, err, ErrDuplicateDay)
}

func TestRegistryUnknownDay(t *testing.T) {
	var r Registry

	_, err := r.Get(6)
	assert.ErrorIs(t, err, ErrUnknownDay)
	assert.Empty(t, r.Days())
}

func TestParseErrorMatchesSentinel(t *testing.T) {
	var err error = &ParseError{Day: 9, Line: 3, Text: "X 5", Reason: "unknown direction"}

	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.Equal(t, `day 9: line 3 "X 5": unknown direction`, err.Error())

	err = &ParseError{Day: 5, Reason: "missing blank line"}
	assert.Equal(t, "day 5: missing blank line", err.Error())
}

func TestAnswerInts(t *testing.T) {
	assert.Equal(t, Answer{Part1: "13", Part2: "-1"}, Ints(13, -1))
}
