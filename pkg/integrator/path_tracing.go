package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// hitEpsilon keeps scattered rays from re-hitting the surface they leave
const hitEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	MaxDepth int // Maximum number of path segments
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, background Background, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, world, background, sampler, pt.MaxDepth)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, world geometry.Hittable, background Background, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, hitEpsilon, math.Inf(1))
	if !isHit {
		return background.Color(ray)
	}

	// Start with emitted light from the hit material
	colorEmitted := material.EmittedLight(hit.Material, *hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	incoming := pt.rayColor(scatter.Scattered, world, background, sampler, depth-1)
	return colorEmitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
