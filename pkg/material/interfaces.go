package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter returns the attenuation and outgoing ray, or false when the
	// ray is absorbed
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light. Materials that do not
// implement it emit black.
type Emitter interface {
	Emitted(uv core.Vec2, point core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface coordinates
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, facing the ray origin
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// EmittedLight returns the light emitted by m at the hit, black for non-emitters
func EmittedLight(m Material, hit HitRecord) core.Vec3 {
	if emitter, ok := m.(Emitter); ok {
		return emitter.Emitted(hit.UV, hit.Point)
	}
	return core.Vec3{X: 0, Y: 0, Z: 0}
}
