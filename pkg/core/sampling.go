package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator.
// A RandomSampler is owned by a single goroutine.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded by seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomInUnitSphere returns a point uniformly distributed inside the unit
// sphere, by rejection from the enclosing cube
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		s := sampler.Get3D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector returns a direction uniformly distributed on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() > 1e-16 {
			return p.Normalize()
		}
	}
}

// RandomInUnitDisk returns a point uniformly distributed inside the unit disk
// in the XY plane (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomVec3 returns a vector whose components are uniform in [lo, hi)
func RandomVec3(sampler Sampler, lo, hi float64) Vec3 {
	s := sampler.Get3D()
	span := hi - lo
	return NewVec3(lo+span*s.X, lo+span*s.Y, lo+span*s.Z)
}

// RandomRange returns a float uniform in [lo, hi)
func RandomRange(sampler Sampler, lo, hi float64) float64 {
	return lo + (hi-lo)*sampler.Get1D()
}
