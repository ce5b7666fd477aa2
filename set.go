package fixedset

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"

	"github.com/Alex-Andrv/shad-fix-set/internal/affine"
)

// Seed-derivation level tags. Each construction level draws its hash
// functions from an independent stream derived from the one global seed.
const (
	levelTop   = 0
	levelInner = 1
)

// FixedSet is a static set of int32 keys with O(1) worst-case Contains.
// It is built once via Initialize and immutable afterwards; see the package
// documentation for the construction scheme.
//
// The zero value is a valid empty set. Use New to apply Options.
type FixedSet struct {
	cfg buildConfig

	hash    affine.Func
	buckets []innerSet
	numKeys int
}

// New returns an empty FixedSet configured with opts. Until Initialize
// succeeds, Contains reports false for every key.
func New(opts ...Option) *FixedSet {
	s := &FixedSet{cfg: defaultBuildConfig()}
	for _, opt := range opts {
		opt(&s.cfg)
	}
	return s
}

// Initialize builds the set from keys. Duplicates collapse to a single
// membership. Calling Initialize again rebuilds the set from scratch; the
// previous contents are discarded before the new build starts, so a failed
// rebuild leaves an empty set, never a stale or half-built one.
//
// Initialize must not run concurrently with Contains. Once it returns, the
// set is safe for unlimited concurrent Contains calls.
//
// The only failure mode is errors.ErrBadHashFunction, returned when the
// randomized search exhausts its attempt budget at either level.
func (s *FixedSet) Initialize(keys []int32) error {
	s.hash = affine.Func{}
	s.buckets = nil
	s.numKeys = 0

	distinct := slices.Clone(keys)
	slices.Sort(distinct)
	distinct = slices.Compact(distinct)
	n := len(distinct)
	if n == 0 {
		return nil
	}

	seed := s.cfg.seed
	if !s.cfg.seedSet {
		seed = entropySeed()
	}

	// Level 1: partition the keys into n buckets, accepting a hash function
	// only if the sum of squared bucket sizes stays within 2n (the FKS
	// space bound, which caps total level-2 slot count at 2n).
	bound := 2 * n
	topHash, err := affine.Find(
		affine.NewGenerator(deriveSeed(seed, levelTop, 0)),
		n, distinct, s.cfg.maxAttempts,
		func(occupancy []int) bool {
			return sumSquares(occupancy) <= bound
		})
	if err != nil {
		return err
	}

	bucketKeys := make([][]int32, n)
	for _, key := range distinct {
		idx := topHash.Bucket(key, n)
		bucketKeys[idx] = append(bucketKeys[idx], key)
	}

	// Level 2: one perfect table per bucket, empty buckets included.
	buckets, err := s.buildBuckets(bucketKeys, seed)
	if err != nil {
		return err
	}

	s.hash = topHash
	s.buckets = buckets
	s.numKeys = n
	return nil
}

// Contains reports whether x is a member of the set. It is valid on the
// zero value and before Initialize, where it reports false.
func (s *FixedSet) Contains(x int32) bool {
	if len(s.buckets) == 0 {
		return false
	}
	idx := s.hash.Bucket(x, len(s.buckets))
	return s.buckets[idx].contains(x)
}

// Len returns the number of distinct keys in the set.
func (s *FixedSet) Len() int {
	return s.numKeys
}

// deriveSeed maps (globalSeed, level, bucket) to an independent generator
// seed. Deriving per-bucket seeds up front is what keeps seeded builds
// identical whether buckets are built sequentially or by parallel workers.
func deriveSeed(globalSeed uint64, level uint8, bucket int) uint64 {
	var buf [17]byte
	buf[0] = level
	binary.LittleEndian.PutUint64(buf[1:9], globalSeed)
	binary.LittleEndian.PutUint64(buf[9:17], uint64(bucket))
	return xxhash.Sum64(buf[:])
}

// entropySeed draws a fresh build seed from the system's entropy source.
func entropySeed() uint64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		// crypto/rand does not fail on supported platforms.
		panic(err)
	}
	return binary.LittleEndian.Uint64(buf[:])
}

func sumSquares(occupancy []int) int {
	total := 0
	for _, count := range occupancy {
		total += count * count
	}
	return total
}
