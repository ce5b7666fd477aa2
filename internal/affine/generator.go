package affine

import (
	"encoding/binary"
	randv2 "math/rand/v2"

	"github.com/zeebo/xxh3"
)

// Generator produces fresh random members of the affine family. It is
// seeded once at construction; two Generators with the same seed emit the
// same sequence of functions, which is what makes seeded builds
// reproducible.
//
// A Generator is not safe for concurrent use. Parallel builds give each
// bucket its own Generator with a derived seed instead of sharing one.
type Generator struct {
	rng *randv2.Rand
}

// NewGenerator returns a Generator seeded with seed. PCG needs two stream
// words; the second is expanded from the first with xxh3 so that a single
// user-facing seed still selects a full 128-bit generator state.
func NewGenerator(seed uint64) *Generator {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	return &Generator{rng: randv2.New(randv2.NewPCG(seed, xxh3.Hash(buf[:])))}
}

// Generate draws a new hash function with the coefficient uniform in
// [1, Prime-1] and the bias uniform in [0, Prime-1]. The coefficient is
// never zero, so the map is never degenerate.
func (g *Generator) Generate() Func {
	return Func{
		A: 1 + g.rng.Uint64N(Prime-1),
		B: g.rng.Uint64N(Prime),
	}
}
