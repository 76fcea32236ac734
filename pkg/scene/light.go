package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// newSimpleLightScene lights the marbled spheres with a rectangle and a sphere
// in an otherwise dark world
func newSimpleLightScene(b *builder) *Scene {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(b.random), 4))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewXYRect(3, 5, 1, 3, -2, light),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
	}

	camera := DefaultCameraConfig()
	camera.LookFrom = core.NewVec3(26, 3, 6)
	camera.LookAt = core.NewVec3(0, 2, 0)

	return &Scene{
		World:          world(objects, camera),
		Background:     integrator.NewSolidBackground(core.Vec3{}),
		CameraConfig:   camera,
		SamplingConfig: SamplingConfig{Width: 400, SamplesPerPixel: 400, MaxDepth: 50},
	}
}
