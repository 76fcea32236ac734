package scene

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// ErrUnknownScene is returned for names missing from the catalogue
var ErrUnknownScene = errors.New("unknown scene")

// DefaultSeed seeds scene randomness when Options.Seed is zero
const DefaultSeed = 42

// DefaultEarthTexture is the image loaded by the earth scenes
const DefaultEarthTexture = "images/earthmap.jpg"

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          geometry.Hittable     // Root of the object tree, usually a BVH
	Background     integrator.Background // Radiance of rays leaving the scene
	CameraConfig   geometry.CameraConfig
	SamplingConfig SamplingConfig
}

// SamplingConfig contains the recommended rendering settings for a scene
type SamplingConfig struct {
	Width           int // Image width; height follows from the camera aspect ratio
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// Height returns the image height for the scene's aspect ratio
func (s *Scene) Height(width int) int {
	return max(int(float64(width)/s.CameraConfig.AspectRatio), 1)
}

// Options controls scene construction
type Options struct {
	Seed         int64       // Seed for random object placement and noise, DefaultSeed when zero
	EarthTexture string      // Image for the earth scenes, DefaultEarthTexture when empty
	Logger       core.Logger // Receives construction warnings, discarded when nil
}

// builder is the common context handed to each scene constructor
type builder struct {
	random *rand.Rand
	opts   Options
}

type constructor func(b *builder) *Scene

// catalogue maps scene names to constructors, in presentation order
var catalogue = []struct {
	name string
	new  constructor
}{
	{"random", newRandomScene},
	{"two-spheres", newTwoSpheresScene},
	{"two-perlin-spheres", newTwoPerlinSpheresScene},
	{"earth", newEarthScene},
	{"simple-light", newSimpleLightScene},
	{"cornell", newCornellScene},
	{"cornell-smoke", newCornellSmokeScene},
	{"final", newFinalScene},
}

// Names returns every scene name in the catalogue
func Names() []string {
	names := make([]string, len(catalogue))
	for i, entry := range catalogue {
		names[i] = entry.name
	}
	return names
}

// New builds the named scene
func New(name string, opts Options) (*Scene, error) {
	if opts.Seed == 0 {
		opts.Seed = DefaultSeed
	}
	if opts.EarthTexture == "" {
		opts.EarthTexture = DefaultEarthTexture
	}
	if opts.Logger == nil {
		opts.Logger = core.NopLogger{}
	}

	for _, entry := range catalogue {
		if entry.name == name {
			s := entry.new(&builder{random: rand.New(rand.NewSource(opts.Seed)), opts: opts})
			s.Name = name
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// DefaultCameraConfig returns the outdoor camera used by most scenes
func DefaultCameraConfig() geometry.CameraConfig {
	return geometry.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}
}

// daylight is the solid background of the outdoor scenes
var daylight = core.NewVec3(0.7, 0.8, 1.0)

// world wraps objects in a BVH over the camera shutter
func world(objects []geometry.Hittable, camera geometry.CameraConfig) geometry.Hittable {
	return geometry.MustNewBVH(objects, camera.Time0, camera.Time1)
}
