package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CheckerTexture alternates between two sources in a 3D checker pattern
// driven by the sign of sin(10x)·sin(10y)·sin(10z)
type CheckerTexture struct {
	Even ColorSource
	Odd  ColorSource
}

// NewCheckerTexture creates a checker pattern from two color sources
func NewCheckerTexture(even, odd ColorSource) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd}
}

// NewCheckerColors creates a checker pattern from two solid colors
func NewCheckerColors(even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate implements ColorSource
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}

// NoiseTexture is a marble-like pattern: a sine along Z phase-shifted by
// Perlin turbulence
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a noise texture
func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale}
}

// Evaluate implements ColorSource
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	phase := n.Scale*point.Z + 10*n.Noise.Turbulence(point, 7)
	return core.NewVec3(1, 1, 1).Multiply(0.5 * (1 + math.Sin(phase)))
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors
// U maps to red channel, V maps to green channel
func NewUVDebugTexture(width, height int) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(width-1)
			v := float64(height-1-y) / float64(height-1)
			pixels[y*width+x] = core.NewVec3(u, v, 0.0)
		}
	}

	return NewImageTexture(width, height, pixels)
}
