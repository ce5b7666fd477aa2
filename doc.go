// Package fixedset implements a static set of integers with O(1) worst-case
// membership queries, using the Fredman–Komlós–Szemerédi (FKS) two-level
// perfect hashing scheme.
//
// The set is built once from a fixed collection of int32 keys (duplicates
// collapse to a single membership) by an O(n) expected-time randomized
// construction, and is logically immutable afterwards: any number of
// goroutines may call Contains concurrently once Initialize has returned.
// The worst-case query cost is two affine hash evaluations and one equality
// check, independent of the input's structure.
//
// # Basic Usage
//
// Building and querying a set:
//
//	set := fixedset.New()
//	if err := set.Initialize(keys); err != nil {
//	    log.Fatal(err)
//	}
//	if set.Contains(42) {
//	    fmt.Println("member")
//	}
//
// Deterministic builds (for tests or reproducible benchmarks) pin the seed:
//
//	set := fixedset.New(fixedset.WithSeed(0x1234))
//
// # How It Works
//
// The construction partitions the n distinct keys into n top-level buckets
// with a randomly drawn affine hash h(x) = (a·x + b) mod p, retrying until
// the sum of squared bucket sizes is at most 2n. Each bucket of k keys then
// gets its own table of k² slots and its own affine hash, retried until no
// two of the bucket's keys share a slot. Both retry loops accept a random
// candidate with constant probability, so construction runs in expected
// linear time, and the quadratic bound keeps total space linear.
//
// # Package Structure
//
//   - Public API: set.go (New, Initialize, Contains, Len)
//   - Configuration: options.go (Option, With* functions)
//   - Per-bucket tables: inner.go
//   - Parallel construction: parallel.go (WithWorkers)
//   - Hash family and construction search: internal/affine
//   - Slot occupancy: internal/bits
package fixedset
