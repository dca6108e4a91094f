// Package systems implements the movement and hunting rules of the chase.
package systems

import "math/rand"

// Source supplies the randomness used by the chase.
// *rand.Rand satisfies it; tests use scripted sources.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSource returns a seeded Source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Uniform returns a value drawn uniformly from [lo, hi).
func Uniform(rng Source, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
