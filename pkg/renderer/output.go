package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// EncodeColor maps an accumulated color sum over samples to 8-bit channels:
// average, gamma 2 (square root), clamp to [0, 0.999], scale by 256
func EncodeColor(sum core.Vec3, samples int) (r, g, b uint8) {
	scale := 1.0
	if samples > 0 {
		scale = 1.0 / float64(samples)
	}
	return encodeChannel(sum.X * scale), encodeChannel(sum.Y * scale), encodeChannel(sum.Z * scale)
}

func encodeChannel(value float64) uint8 {
	// NaN samples from degenerate geometry render black
	if math.IsNaN(value) || value < 0 {
		value = 0
	}
	return uint8(256 * min(max(math.Sqrt(value), 0), 0.999))
}

// WritePPM writes the framebuffer as a plain-text (P3) PPM image
func WritePPM(w io.Writer, fb *Framebuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return fmt.Errorf("writing PPM header: %w", err)
	}

	for i := range fb.Pixels {
		r, g, b := EncodeColor(fb.Pixels[i].ColorAccum, fb.Pixels[i].SampleCount)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return fmt.Errorf("writing PPM pixel %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing PPM: %w", err)
	}
	return nil
}

// ToImage converts the framebuffer to an RGBA image with the same encoding as WritePPM
func ToImage(fb *Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			pixel := fb.At(x, y)
			r, g, b := EncodeColor(pixel.ColorAccum, pixel.SampleCount)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// WritePNG writes the framebuffer as a PNG image
func WritePNG(w io.Writer, fb *Framebuffer) error {
	if err := png.Encode(w, ToImage(fb)); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
