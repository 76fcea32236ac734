package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// newTwoSpheresScene stacks two checkered spheres
func newTwoSpheresScene(b *builder) *Scene {
	checker := material.NewTexturedLambertian(material.NewCheckerColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))
	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	}

	camera := DefaultCameraConfig()
	return &Scene{
		World:          world(objects, camera),
		Background:     integrator.NewSolidBackground(daylight),
		CameraConfig:   camera,
		SamplingConfig: SamplingConfig{Width: 400, SamplesPerPixel: 100, MaxDepth: 50},
	}
}

// newTwoPerlinSpheresScene puts a marbled sphere on a marbled ground
func newTwoPerlinSpheresScene(b *builder) *Scene {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(b.random), 4))
	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	}

	camera := DefaultCameraConfig()
	return &Scene{
		World:          world(objects, camera),
		Background:     integrator.NewSolidBackground(daylight),
		CameraConfig:   camera,
		SamplingConfig: SamplingConfig{Width: 400, SamplesPerPixel: 100, MaxDepth: 50},
	}
}

// newEarthScene renders an image-mapped globe
func newEarthScene(b *builder) *Scene {
	earth := material.NewTexturedLambertian(b.earthTexture())
	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, earth),
	}

	camera := DefaultCameraConfig()
	return &Scene{
		World:          world(objects, camera),
		Background:     integrator.NewSolidBackground(daylight),
		CameraConfig:   camera,
		SamplingConfig: SamplingConfig{Width: 400, SamplesPerPixel: 100, MaxDepth: 50},
	}
}

// earthTexture loads the globe image, falling back to the cyan missing texture
func (b *builder) earthTexture() *material.ImageTexture {
	texture, err := loaders.LoadImageTexture(b.opts.EarthTexture)
	if err != nil {
		b.opts.Logger.Printf("Could not load earth texture, rendering it cyan: %v", err)
	}
	return texture
}
