// Package bits provides low-level bit manipulation primitives.
package bits

// Set is a fixed-capacity bit set. The zero value has capacity zero.
type Set struct {
	words []uint64
}

// NewSet returns a Set with capacity for n bits, all clear.
func NewSet(n int) Set {
	return Set{words: make([]uint64, (n+63)/64)}
}

// Mark sets bit i. The caller must guarantee i < capacity.
func (s Set) Mark(i int) {
	s.words[i>>6] |= 1 << (uint(i) & 63)
}

// Test reports whether bit i is set. The caller must guarantee i < capacity.
func (s Set) Test(i int) bool {
	return s.words[i>>6]&(1<<(uint(i)&63)) != 0
}
