package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	Scanlines      int           // Number of scanlines rendered
	Duration       time.Duration // Wall time of the render
}

// add merges the counts of other into s
func (s *RenderStats) add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.Scanlines += other.Scanlines
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator for variance estimates
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the sample variance of the pixel luminance
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	return max((ps.LuminanceSqAccum-n*mean*mean)/(n-1), 0)
}

// Framebuffer holds per-pixel accumulators in raster order, row 0 at the top
type Framebuffer struct {
	Width  int
	Height int
	Pixels []PixelStats
}

// NewFramebuffer allocates an empty framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]PixelStats, width*height),
	}
}

// At returns the accumulator for pixel (x, y)
func (fb *Framebuffer) At(x, y int) *PixelStats {
	return &fb.Pixels[y*fb.Width+x]
}

// Row returns the accumulators of scanline y
func (fb *Framebuffer) Row(y int) []PixelStats {
	return fb.Pixels[y*fb.Width : (y+1)*fb.Width]
}

// AverageLuminance returns the mean luminance of the averaged pixel colors
func (fb *Framebuffer) AverageLuminance() float64 {
	if len(fb.Pixels) == 0 {
		return 0
	}
	total := 0.0
	for i := range fb.Pixels {
		total += fb.Pixels[i].GetColor().Luminance()
	}
	return total / float64(len(fb.Pixels))
}
