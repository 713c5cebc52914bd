// Package entropy builds the seeded randomness source behind every
// stochastic roll in a run. One *rand.Rand is shared per simulation so
// that a seed and a scenario pin down the whole run.
package entropy

import "math/rand"

// New returns a deterministic PRNG for the given seed. Seed 0 is coerced
// to 1 so a forgotten seed still produces a reproducible run instead of
// whatever the zero source does.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

// Uniform draws from [lo, hi). The interaction phase uses it for the
// threshold jitter and combat loss multipliers.
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
