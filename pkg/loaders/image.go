package loaders

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrEmptyImage is returned for images with no pixels
var ErrEmptyImage = errors.New("image has no pixels")

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, row 0 at the top
}

// LoadImage loads a PNG or JPEG image and converts it to Vec3 color array
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	return FromImage(img)
}

// FromImage converts a decoded image to a Vec3 color array in [0, 1]
func FromImage(img image.Image) (*ImageData, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, ErrEmptyImage
	}

	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// Texture wraps the pixels in an image texture
func (d *ImageData) Texture() *material.ImageTexture {
	return material.NewImageTexture(d.Width, d.Height, d.Pixels)
}

// LoadImageTexture loads an image file as a texture. On failure it returns
// the error together with an empty texture that renders as solid cyan, so
// callers may log and continue.
func LoadImageTexture(filename string) (*material.ImageTexture, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return material.NewImageTexture(0, 0, nil), err
	}
	return data.Texture(), nil
}
