package puzzle

import (
	"fmt"
	"slices"
	"sync"
)

// Registry maps puzzle days to their solvers.
type Registry struct {
	mu      sync.RWMutex
	solvers map[int]Solver
}

// NewRegistry creates a registry pre-filled with solvers.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{solvers: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds s under s.Day().
func (r *Registry) Register(s Solver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.solvers == nil {
		r.solvers = make(map[int]Solver)
	}
	if _, ok := r.solvers[s.Day()]; ok {
		return fmt.Errorf("registering day %d: %w", s.Day(), ErrDuplicateDay)
	}
	r.solvers[s.Day()] = s
	return nil
}

// Get returns the solver for day.
func (r *Registry) Get(day int) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("day %d: %w", day, ErrUnknownDay)
	}
	return s, nil
}

// Days returns registered days in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}
