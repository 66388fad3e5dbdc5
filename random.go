package tin

import (
	"math/rand/v2"
	"sync"
)

var (
	randMu  sync.Mutex
	randSrc = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
)

// Seed makes subsequent Random calls deterministic.
func Seed(seed uint64) {
	randMu.Lock()
	randSrc = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	randMu.Unlock()
}

// Random returns a uniformly distributed value in [lo, hi).
func Random(lo, hi float64) float64 {
	randMu.Lock()
	f := randSrc.Float64()
	randMu.Unlock()
	return lo + f*(hi-lo)
}

// RandomFromZero returns a uniformly distributed value in [0, hi).
func RandomFromZero(hi float64) float64 {
	return Random(0, hi)
}

// RandomGaussian returns a normally distributed value with mean 0 and
// standard deviation 1/3, clamped to [-1, 1].
func RandomGaussian() float64 {
	randMu.Lock()
	n := randSrc.NormFloat64()
	randMu.Unlock()
	return Constrain(n/3, -1, 1)
}
