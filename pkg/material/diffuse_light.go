package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emission ColorSource // Emitted light color/intensity
}

// NewDiffuseLight creates a new emissive material with a solid color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a new emissive material driven by a texture
func NewTexturedDiffuseLight(emission ColorSource) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter implements the Material interface for emissive materials.
// Lights absorb all incoming rays, which ends the path.
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emitted light, independent of viewing angle
func (e *DiffuseLight) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return e.Emission.Evaluate(uv, point)
}
