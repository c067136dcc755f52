// Package randutil centralises how games derive their random sources so a
// seed always reproduces the same shuffle and the same random asks.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed returns seed unchanged, or a time based seed when seed is zero.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Derive returns the seed of the n-th game of a batch started from base.
// Neighbouring games get well separated streams.
func Derive(base int64, n int) int64 {
	return int64(mix(uint64(base) + uint64(n)*goldenRatio64))
}

// IntNExcluding returns a uniform value in [0, n) that is never exclude.
// n must be at least 2 when exclude lies inside the range.
func IntNExcluding(rng *rand.Rand, n, exclude int) int {
	if exclude < 0 || exclude >= n {
		return rng.IntN(n)
	}
	v := rng.IntN(n - 1)
	if v >= exclude {
		v++
	}
	return v
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
