package rope

import (
	"fmt"

	"github.com/udisondev/advent/internal/geo"
)

// Chain holds the history of every link; index 0 is the head.
// All histories have the same length.
type Chain []History

// BuildChain derives n-1 followers from head, each from its predecessor's
// complete history.
func BuildChain(head History, n int) (Chain, error) {
	if n < 1 {
		return nil, fmt.Errorf("building chain of %d links: %w", n, ErrChainLength)
	}

	c := make(Chain, n)
	c[0] = head
	for i := 1; i < n; i++ {
		c[i] = Follow(c[i-1])
	}
	return c, nil
}

// Tail returns the history of the n-th link without keeping the intermediate ones.
// n == 1 returns head itself.
func Tail(head History, n int) (History, error) {
	if n < 1 {
		return nil, fmt.Errorf("tail of %d links: %w", n, ErrChainLength)
	}

	h := head
	for i := 1; i < n; i++ {
		h = Follow(h)
	}
	return h, nil
}

// CountTailPositions returns how many distinct positions the last of n links visits.
func CountTailPositions(head History, n int) (int, error) {
	tail, err := Tail(head, n)
	if err != nil {
		return 0, err
	}
	return tail.Distinct(), nil
}

// Simulate decodes input, moves the head and counts the distinct positions
// visited by the last of knots links.
func Simulate(input string, knots int) (int, error) {
	moves, err := DecodeInput(input)
	if err != nil {
		return 0, err
	}
	return CountTailPositions(Track(moves), knots)
}

// Steps returns the number of time steps in the chain, including the start.
func (c Chain) Steps() int {
	if len(c) == 0 {
		return 0
	}
	return len(c[0])
}

// At returns every link's position at step.
func (c Chain) At(step int) []Position {
	ps := make([]Position, len(c))
	for i, h := range c {
		ps[i] = h[step]
	}
	return ps
}

// Bounds returns the rectangle covering every link at every step and the origin.
func (c Chain) Bounds() geo.Bounds {
	b := geo.BoundsOf(geo.Origin)
	for _, h := range c {
		for _, p := range h {
			b = b.Extend(p)
		}
	}
	return b
}

// Heading returns the compass direction the head moved on step ("-" at the start).
func (c Chain) Heading(step int) string {
	if len(c) == 0 || step <= 0 || step >= c.Steps() {
		return geo.NSWEString(0)
	}
	return geo.NSWEString(geo.ComputeNSWE(c[0][step-1], c[0][step]))
}
