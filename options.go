package fixedset

import "github.com/Alex-Andrv/shad-fix-set/internal/affine"

// Option is a functional option for configuring builds.
type Option func(*buildConfig)

type buildConfig struct {
	seed        uint64
	seedSet     bool // true once WithSeed has been applied
	maxAttempts int
	workers     int
}

func defaultBuildConfig() buildConfig {
	return buildConfig{
		maxAttempts: affine.DefaultMaxAttempts,
		workers:     0, // Default to single-threaded; use WithWorkers(n) to parallelize
	}
}

// WithSeed pins the seed from which every hash-function generator in the
// build is derived. Builds with the same seed, keys, and attempt budget
// produce identical structures regardless of worker count. Without this
// option each Initialize draws a fresh seed from system entropy.
func WithSeed(seed uint64) Option {
	return func(c *buildConfig) {
		c.seed = seed
		c.seedSet = true
	}
}

// WithMaxAttempts sets the attempt budget of the construction search at
// both levels. Values <= 0 select the default (1000).
func WithMaxAttempts(n int) Option {
	return func(c *buildConfig) {
		c.maxAttempts = n
	}
}

// WithWorkers sets the number of goroutines building per-bucket tables
// during Initialize. Values <= 1 keep construction on the calling
// goroutine.
func WithWorkers(n int) Option {
	return func(c *buildConfig) {
		c.workers = n
	}
}
