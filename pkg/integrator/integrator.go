package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray from world,
	// with background supplying the radiance of rays that escape
	RayColor(ray core.Ray, world geometry.Hittable, background Background, sampler core.Sampler) core.Vec3
}
