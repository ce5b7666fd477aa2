// Package affine implements the universal hash family used by fixedset:
// h(x) = (a·x + b) mod p over a fixed prime modulus p, together with the
// seeded generator of random family members and the bounded-retry search
// that both construction levels share.
package affine

import "math/bits"

// Prime is the modulus shared by every hash function in the family: the
// smallest prime above 2^32. Keeping Prime above the number of possible
// keys means distinct int32 keys always occupy distinct residues, so no two
// keys are indistinguishable to the family and the zero-collision search at
// level 2 cannot be starved by any input.
const Prime uint64 = 4294967311

// Func is one member of the affine family, identified by its coefficient
// and bias. The zero value is degenerate (A = 0 collapses the family to a
// constant map) and is never produced by a Generator.
type Func struct {
	A uint64 // coefficient, in [1, Prime-1]
	B uint64 // bias, in [0, Prime-1]
}

// Hash returns (A·x + B) mod Prime, in [0, Prime).
//
// x is first mapped to uint64(uint32(x)), an injection of int32 into
// [0, 2^32). The product A·x can slightly exceed 64 bits, so it is formed
// as a 128-bit value with bits.Mul64 and reduced with bits.Div64.
func (f Func) Hash(x int32) uint64 {
	hi, lo := bits.Mul64(f.A, uint64(uint32(x)))
	// hi <= ((Prime-1)·(2^32-1)) >> 64 = 1 < Prime, so Div64 cannot panic.
	_, rem := bits.Div64(hi, lo, Prime)
	return (rem + f.B) % Prime
}

// Bucket maps x to a bucket index in [0, numBuckets).
// numBuckets must be positive; callers that can see an empty collection
// skip hashing entirely rather than reduce modulo zero.
func (f Func) Bucket(x int32, numBuckets int) int {
	return int(f.Hash(x) % uint64(numBuckets))
}
