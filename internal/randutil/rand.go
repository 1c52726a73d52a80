// Package randutil builds the random sources used for shuffling.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Every shuffle in a round draws from this source, so a fixed seed replays
// the same cards.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed picks a seed from the wall clock. Callers log it so a session can be
// replayed with New.
func Seed() int64 {
	return time.Now().UnixNano()
}

// Resolve returns seed when it is set, otherwise a fresh clock seed
func Resolve(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return Seed()
}

// Derive returns a child seed for the n-th independent stream of a run
// (one per simulated round) so workers never share a source.
func Derive(seed int64, n int) int64 {
	return int64(mix(uint64(seed) + uint64(n)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
