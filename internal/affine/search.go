package affine

import (
	"fmt"

	seterrors "github.com/Alex-Andrv/shad-fix-set/errors"
)

// DefaultMaxAttempts is the default attempt budget for Find. For the bucket
// sizings fixedset uses, a random family member is accepted with constant
// probability, so 1000 attempts puts the failure probability far below
// anything observable in practice.
const DefaultMaxAttempts = 1000

// Predicate decides whether a candidate hash function is acceptable, given
// the occupancy count of every bucket it produced. It must not retain the
// slice, which is reused across attempts.
type Predicate func(occupancy []int) bool

// Find runs the randomized construction search shared by both levels of the
// FKS scheme: draw a candidate function from gen, hash every key modulo
// numBuckets to obtain the occupancy distribution, and return the first
// candidate that accept admits. After maxAttempts rejected candidates it
// gives up with ErrBadHashFunction (maxAttempts <= 0 means
// DefaultMaxAttempts).
//
// numBuckets must be positive and keys non-empty; callers handle the empty
// collection before reaching the search.
func Find(gen *Generator, numBuckets int, keys []int32, maxAttempts int, accept Predicate) (Func, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	occupancy := make([]int, numBuckets)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		f := gen.Generate()
		clear(occupancy)
		for _, key := range keys {
			occupancy[f.Bucket(key, numBuckets)]++
		}
		if accept(occupancy) {
			return f, nil
		}
	}
	return Func{}, fmt.Errorf("%w: %d attempts over %d buckets for %d keys",
		seterrors.ErrBadHashFunction, maxAttempts, numBuckets, len(keys))
}
