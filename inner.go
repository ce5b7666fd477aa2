package fixedset

import (
	"github.com/Alex-Andrv/shad-fix-set/internal/affine"
	"github.com/Alex-Andrv/shad-fix-set/internal/bits"
)

// innerSet is the level-2 perfect table for one top-level bucket. A bucket
// of k keys gets k² slots, and the construction search only accepts a hash
// function that places the k keys in k distinct slots, so a lookup is one
// hash evaluation plus one equality check.
//
// The zero value is the empty bucket: it answers every query with false and
// never applies a hash function, so no reduction modulo a zero slot count
// can occur.
type innerSet struct {
	hash     affine.Func
	slots    []int32
	occupied bits.Set
	numKeys  int
}

// collisionFree is the level-2 acceptance predicate: no slot holds more
// than one key.
func collisionFree(occupancy []int) bool {
	for _, count := range occupancy {
		if count > 1 {
			return false
		}
	}
	return true
}

// buildInnerSet constructs the perfect table for one bucket's keys, which
// must already be distinct.
func buildInnerSet(keys []int32, seed uint64, maxAttempts int) (innerSet, error) {
	k := len(keys)
	if k == 0 {
		return innerSet{}, nil
	}
	numSlots := k * k
	fn, err := affine.Find(affine.NewGenerator(seed), numSlots, keys, maxAttempts, collisionFree)
	if err != nil {
		return innerSet{}, err
	}
	set := innerSet{
		hash:     fn,
		slots:    make([]int32, numSlots),
		occupied: bits.NewSet(numSlots),
		numKeys:  k,
	}
	for _, key := range keys {
		slot := fn.Bucket(key, numSlots)
		set.slots[slot] = key
		set.occupied.Mark(slot)
	}
	return set, nil
}

func (s *innerSet) contains(x int32) bool {
	if len(s.slots) == 0 {
		return false
	}
	slot := s.hash.Bucket(x, len(s.slots))
	// Hash equality alone would admit false positives from non-members that
	// land in an occupied slot; the stored key must match exactly.
	return s.occupied.Test(slot) && s.slots[slot] == x
}
