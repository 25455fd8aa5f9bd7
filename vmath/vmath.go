package vmath

import (
	"math"
)

// Epsilon guards normalization and divisions by near-zero lengths
const Epsilon = 1e-6

// --- Scalar ---

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// ApproxEqual compares two scalars within tol
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// --- Randomness ---

// FastRand is an xorshift64 generator (13, 17, 5)
// Not safe for concurrent use; each consumer owns its instance
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Fork derives an independent generator, advancing the parent once
func (r *FastRand) Fork() *FastRand {
	return NewFastRand(r.Next() ^ 0x9E3779B97F4A7C15)
}
