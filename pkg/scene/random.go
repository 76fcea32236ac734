package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// newRandomScene creates a checkered ground covered in small random spheres
// around three large ones. Diffuse spheres bounce during the shutter.
func newRandomScene(b *builder) *Scene {
	random := b.random
	sampler := core.NewRandomSampler(random)

	ground := material.NewTexturedLambertian(material.NewCheckerColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))
	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
	}

	for a := -11; a <= 11; a++ {
		for c := -11; c <= 11; c++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(c)+0.9*random.Float64())

			// Keep clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				center2 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				objects = append(objects, geometry.NewMovingSphere(center, center2, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := 0.5 * random.Float64()
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	camera := DefaultCameraConfig()
	camera.Aperture = 0.1

	return &Scene{
		World:          world(objects, camera),
		Background:     integrator.NewSkyBackground(),
		CameraConfig:   camera,
		SamplingConfig: SamplingConfig{Width: 400, SamplesPerPixel: 100, MaxDepth: 50},
	}
}
