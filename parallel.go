package fixedset

import "golang.org/x/sync/errgroup"

// buildBuckets constructs one innerSet per top-level bucket. With
// cfg.workers <= 1 everything runs on the calling goroutine; otherwise the
// non-empty buckets are spread across an errgroup bounded at cfg.workers.
// Each goroutine writes a disjoint index of buckets, so no synchronization
// beyond Wait is needed, and because every bucket's generator seed is
// derived up front the result is identical to the sequential build.
func (s *FixedSet) buildBuckets(bucketKeys [][]int32, globalSeed uint64) ([]innerSet, error) {
	buckets := make([]innerSet, len(bucketKeys))

	if s.cfg.workers <= 1 {
		for i, keys := range bucketKeys {
			inner, err := buildInnerSet(keys, deriveSeed(globalSeed, levelInner, i), s.cfg.maxAttempts)
			if err != nil {
				return nil, err
			}
			buckets[i] = inner
		}
		return buckets, nil
	}

	var g errgroup.Group
	g.SetLimit(s.cfg.workers)
	for i, keys := range bucketKeys {
		if len(keys) == 0 {
			// The zero-value innerSet already is the empty bucket.
			continue
		}
		g.Go(func() error {
			inner, err := buildInnerSet(keys, deriveSeed(globalSeed, levelInner, i), s.cfg.maxAttempts)
			if err != nil {
				return err
			}
			buckets[i] = inner
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buckets, nil
}
