package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Background gives the radiance of a ray that leaves the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// SolidBackground is a constant color in every direction
type SolidBackground struct {
	Radiance core.Vec3
}

// NewSolidBackground creates a constant background
func NewSolidBackground(radiance core.Vec3) *SolidBackground {
	return &SolidBackground{Radiance: radiance}
}

// Color implements Background
func (b *SolidBackground) Color(ray core.Ray) core.Vec3 {
	return b.Radiance
}

// GradientBackground blends vertically from Bottom to Top by ray direction
type GradientBackground struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewGradientBackground creates a vertical gradient background
func NewGradientBackground(top, bottom core.Vec3) *GradientBackground {
	return &GradientBackground{Top: top, Bottom: bottom}
}

// NewSkyBackground creates the classic white-to-blue sky
func NewSkyBackground() *GradientBackground {
	return NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
}

// Color implements Background
func (b *GradientBackground) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}
