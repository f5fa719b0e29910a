package rope

import "github.com/udisondev/advent/internal/geo"

// Position is a rope link coordinate.
type Position = geo.Point

// History is every position a link occupies, one entry per time step.
// Entry 0 is the start. A History is never modified after it is built.
type History []Position

// Track applies moves to a head starting at the origin.
// The result has len(moves)+1 entries.
func Track(moves []Displacement) History {
	h := make(History, len(moves)+1)
	h[0] = geo.Origin
	for i, m := range moves {
		h[i+1] = h[i].Add(geo.Point(m))
	}
	return h
}

// Follow derives the history of the link attached behind leader.
// The follower starts at the origin and, at each tick, steps one unit toward
// the leader on each axis only when the leader is out of its 3x3 neighbourhood.
func Follow(leader History) History {
	if len(leader) == 0 {
		return History{}
	}

	f := make(History, len(leader))
	f[0] = geo.Origin
	for i := 1; i < len(leader); i++ {
		prev := f[i-1]
		if prev.Touches(leader[i]) {
			f[i] = prev
			continue
		}
		f[i] = prev.StepToward(leader[i])
	}
	return f
}

// Distinct returns the number of different positions in h.
func (h History) Distinct() int {
	seen := make(map[Position]struct{}, len(h))
	for _, p := range h {
		seen[p] = struct{}{}
	}
	return len(seen)
}

// Last returns the final position, or the origin for an empty history.
func (h History) Last() Position {
	if len(h) == 0 {
		return geo.Origin
	}
	return h[len(h)-1]
}
