package population

import "math/rand/v2"

// Source is a uniform random generator over [0, 1)
// *rand.Rand satisfies it; tests substitute fixed sequences
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed generator, entropy seeded when seed is 0
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// chance reports whether one draw falls under probability p
func chance(rng Source, p float64) bool {
	return rng.Float64() < p
}
