package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Isotropic is the phase function of a participating medium: it scatters
// uniformly in every direction
type Isotropic struct {
	Albedo ColorSource
}

// NewIsotropic creates a new isotropic phase function with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates a new isotropic phase function with texture
func NewTexturedIsotropic(albedo ColorSource) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter implements the Material interface
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, core.RandomInUnitSphere(sampler), rayIn.Time),
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}
