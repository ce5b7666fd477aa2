// Package errors defines all exported error sentinels for the fixedset library.
//
// This is the single source of truth for error values. Both the top-level
// fixedset package and internal packages import from here, ensuring
// errors.Is checks work across package boundaries.
package errors

import "errors"

// Construction errors
var (
	// ErrBadHashFunction is returned when the randomized construction search
	// exhausts its attempt budget without finding a hash function whose
	// bucket occupancy distribution satisfies the level's acceptance
	// predicate. With the default budget of 1000 attempts this is
	// vanishingly unlikely for any input; seeing it in practice points at a
	// misconfigured attempt budget, not at the input.
	ErrBadHashFunction = errors.New("fixedset: no acceptable hash function found within attempt budget")
)
