package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// mediumExitOffset separates the search for the exit point from the entry point
const mediumExitOffset = 1e-4

// ConstantMedium is a homogeneous participating medium (smoke, fog) filling
// a convex boundary
type ConstantMedium struct {
	Boundary      Hittable
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium of the given density inside boundary
func NewConstantMedium(boundary Hittable, density float64, albedo material.ColorSource) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
		negInvDensity: -1 / density,
	}
}

// NewConstantMediumColor creates a medium with a solid color
func NewConstantMediumColor(boundary Hittable, density float64, color core.Vec3) *ConstantMedium {
	return NewConstantMedium(boundary, density, material.NewSolidColor(color))
}

// Hit samples a scattering distance inside the medium. Rays that cross the
// medium without scattering report a miss.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, entry.T+mediumExitOffset, math.Inf(1))
	if !ok {
		return nil, false
	}

	t0 := math.Max(entry.T, tMin)
	t1 := math.Min(exit.T, tMax)
	if t0 >= t1 {
		return nil, false
	}
	if t0 < 0 {
		t0 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInside := (t1 - t0) * rayLength
	// rand.Float64 draws from the goroutine-safe global source
	hitDistance := m.negInvDensity * math.Log(rand.Float64())
	if hitDistance > distanceInside {
		return nil, false
	}

	t := t0 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // arbitrary
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
