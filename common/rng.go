package common

import (
	"math/rand/v2"
	"time"
)

// Rand wraps a seeded generator with the range helpers the simulation draws
// from. Not safe for concurrent use.
type Rand struct {
	r *rand.Rand
}

// NewRand seeds a generator. A zero seed uses the current time.
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Range returns a float in [lo, hi).
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

// IntRange returns an int in [lo, hi). It returns lo when hi <= lo.
func (r *Rand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo)
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.r.Float64() < p
}

func (r *Rand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}
