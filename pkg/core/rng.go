package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p. Values outside [0, 1] are clamped.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Scatter returns the indexes in [0, total) selected with probability density,
// in ascending order.
func (r *RNG) Scatter(total int, density float64) []int {
	var picked []int
	for i := 0; i < total; i++ {
		if r.Chance(density) {
			picked = append(picked, i)
		}
	}
	return picked
}
