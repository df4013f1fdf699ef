// Package solve defines sentinel errors and tunable options for maze solving.
package solve

import "errors"

// Sentinel errors for solve operations.
var (
	// ErrNoRoute indicates no checkpoint ordering reaches the exit without
	// the key balance going negative: the maze is unsolvable.
	ErrNoRoute = errors.New("solve: no valid route to the exit")

	// ErrLegUnreachable indicates a point-to-point search between two
	// consecutive checkpoints found no path. Routes produced by Routes
	// never trigger this; it guards against hand-built checkpoint lists.
	ErrLegUnreachable = errors.New("solve: no path between consecutive checkpoints")

	// ErrNotAdjacent indicates two consecutive walk vertices do not differ
	// by exactly one unit step, so no move character exists for them.
	ErrNotAdjacent = errors.New("solve: consecutive vertices are not adjacent")

	// ErrBadMaxRoutes indicates WithMaxRoutes was given a negative cap.
	ErrBadMaxRoutes = errors.New("solve: MaxRoutes must be non-negative")
)

// Options holds tunable parameters for route enumeration.
//
// MaxRoutes caps how many complete routes the enumerator collects before it
// stops descending; 0 (the default) means unlimited. Enumeration cost is
// worst-case exponential in the number of checkpoints, so callers working
// with adversarial inputs may want a ceiling.
type Options struct {
	MaxRoutes int
}

// Option is a functional option for configuring route enumeration.
type Option func(*Options)

// WithMaxRoutes caps the number of complete routes collected.
// n == 0 means no cap. Panics on negative n to signal invalid
// configuration early.
func WithMaxRoutes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxRoutes.Error())
		}
		o.MaxRoutes = n
	}
}

// DefaultOptions returns the default enumeration settings: no route cap.
func DefaultOptions() Options {
	return Options{MaxRoutes: 0}
}
