// Package randutil centralises how seeded math/rand/v2 generators are built so
// that decks and Monte Carlo workers get reproducible sequences.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed returns seed when it is non-zero, otherwise a seed derived from the
// current time. Zero means "pick one for me" in configs and flags.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Split derives n independent generators from parent, one per worker. The
// parent is advanced, so splitting twice yields different children.
func Split(parent *rand.Rand, n int) []*rand.Rand {
	children := make([]*rand.Rand, n)
	for i := range children {
		children[i] = rand.New(rand.NewPCG(mix(parent.Uint64()), mix(parent.Uint64()+goldenRatio64)))
	}
	return children
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
