package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDay возвращается, когда для дня не зарегистрирован solver.
	ErrUnknownDay = errors.New("unknown day")

	// ErrDuplicateDay возвращается при повторной регистрации дня.
	ErrDuplicateDay = errors.New("day already registered")

	// ErrNoInput возвращается, когда входной файл дня отсутствует.
	ErrNoInput = errors.New("input not found")

	// ErrMalformedInput is matched by every ParseError.
	ErrMalformedInput = errors.New("malformed input")
)

// ParseError reports a line a solver could not parse.
// Line is 1-based; 0 means the error is not tied to a single line.
type ParseError struct {
	Day    int
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("day %d: %s", e.Day, e.Reason)
	}
	return fmt.Sprintf("day %d: line %d %q: %s", e.Day, e.Line, e.Text, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedInput) true for any ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedInput
}
