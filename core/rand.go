package core

import "math/rand"

// Rand is the simulation's random source. All probabilistic branches
// (neuron activation, signal sparkle, generator picks) draw from one
// seedable source so a fixed seed reproduces a full run.
//
// Not safe for concurrent use: geometry building and system updates
// both run on the tick goroutine, which is the only consumer.
type Rand struct {
	src *rand.Rand
}

// NewRand creates a random source from the given seed
func NewRand(seed int64) *Rand {
	return &Rand{src: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform value in [0,1)
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Intn returns a uniform int in [0,n)
func (r *Rand) Intn(n int) int {
	return r.src.Intn(n)
}

// Range returns a uniform value in [lo,hi)
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + r.src.Float64()*(hi-lo)
}

// Chance performs a Bernoulli trial with probability p
func (r *Rand) Chance(p float64) bool {
	return r.src.Float64() < p
}

// NormFloat64 returns a normally distributed value (mean 0, stddev 1)
func (r *Rand) NormFloat64() float64 {
	return r.src.NormFloat64()
}

// Jitter returns a uniform value in [-scale, scale)
func (r *Rand) Jitter(scale float64) float64 {
	return (r.src.Float64()*2 - 1) * scale
}

// UnitSphere returns a direction uniformly distributed by solid angle
func (r *Rand) UnitSphere() Vec3 {
	// Normalized gaussian triple is uniform on the sphere
	for {
		v := Vec3{r.src.NormFloat64(), r.src.NormFloat64(), r.src.NormFloat64()}
		if l := v.Length(); l > 1e-9 {
			return v.Scale(1 / l)
		}
	}
}
