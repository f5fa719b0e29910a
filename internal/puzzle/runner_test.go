package puzzle

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	"github.com/udisondev/advent/internal/testutil"
)

type RunnerSuite struct {
	suite.Suite
	registry *Registry
	dir      string
}

func (s *RunnerSuite) SetupTest() {
	var err error
	s.registry, err = NewRegistry(
		stubSolver{day: 1, answer: Ints(1, 2)},
		stubSolver{day: 2, err: &ParseError{Day: 2, Line: 1, Text: "?", Reason: "bad"}},
		stubSolver{day: 3, answer: Answer{Part1: "a", Part2: "b"}},
		stubSolver{day: 4, answer: Ints(4, 4)},
	)
	s.Require().NoError(err)

	// day 4 intentionally has no input file
	s.dir = testutil.InputDir(s.T(), map[int]string{1: "x", 2: "y", 3: "z"})
}

func (s *RunnerSuite) runner() *Runner {
	return &Runner{
		Registry:    s.registry,
		InputDir:    s.dir,
		Parallelism: 2,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (s *RunnerSuite) TestRunAllDaysOrdered() {
	ctx := testutil.ContextWithTimeout(s.T(), 5*time.Second)

	results, err := s.runner().Run(ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(results, 4)

	for i, want := range []int{1, 2, 3, 4} {
		s.Equal(want, results[i].Day)
	}

	s.NoError(results[0].Err)
	s.Equal(Ints(1, 2), results[0].Answer)
	s.ErrorIs(results[1].Err, ErrMalformedInput)
	s.Equal(Answer{Part1: "a", Part2: "b"}, results[2].Answer)
	s.ErrorIs(results[3].Err, ErrNoInput)
}

func (s *RunnerSuite) TestRunSelectedDays() {
	ctx := testutil.ContextWithTimeout(s.T(), 5*time.Second)

	results, err := s.runner().Run(ctx, []int{3, 1})
	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.Equal(3, results[0].Day)
	s.Equal(1, results[1].Day)
}

func (s *RunnerSuite) TestRunUnknownDay() {
	ctx := testutil.ContextWithTimeout(s.T(), 5*time.Second)

	_, err := s.runner().Run(ctx, []int{1, 25})
	s.ErrorIs(err, ErrUnknownDay)
}

func (s *RunnerSuite) TestRunCancelled() {
	ctx, cancel := testutil.ContextWithCancel(s.T())
	cancel()

	_, err := s.runner().Run(ctx, nil)
	s.ErrorIs(err, context.Canceled)
}

func TestRunnerSuite(t *testing.T) {
	defer goleak.VerifyNone(t)
	suite.Run(t, new(RunnerSuite))
}

func TestLoadInputMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadInput(dir, 7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoInput))
	assert.Contains(t, err.Error(), "day07.txt")
}

func TestLoadInput(t *testing.T) {
	dir := testutil.InputDir(t, map[int]string{10: "noop\n"})

	input, err := LoadInput(dir, 10)
	require.NoError(t, err)
	assert.Equal(t, "noop\n", input)
}
