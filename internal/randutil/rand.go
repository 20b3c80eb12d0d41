// Package randutil derives the deterministic random sources a simulation
// shuffles with.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from seed. Two calls with
// the same seed produce identical sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// GameSeed derives the seed for one game of a run. Games are numbered from 1;
// neighbouring game ids map to unrelated seeds so consecutive games do not
// share shuffle prefixes.
func GameSeed(runSeed int64, gameID int) int64 {
	return int64(mix(uint64(runSeed) + uint64(gameID)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
