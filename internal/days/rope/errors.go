package rope

import (
	"errors"
	"fmt"
)

// ErrChainLength is returned when a chain would have fewer than one link.
var ErrChainLength = errors.New("chain length must be at least 1")

func errFieldCount(n int) error {
	return fmt.Errorf("expected \"<DIR> <COUNT>\", got %d fields", n)
}

func errBadCount(s string) error {
	return fmt.Errorf("count %q is not a non-negative integer", s)
}
