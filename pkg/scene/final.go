package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// newFinalScene exercises every object kind: a field of boxes, a moving
// sphere, glass, metal, subsurface fog, global mist, image and noise
// textures, and a rotated cluster of spheres
func newFinalScene(b *builder) *Scene {
	random := b.random
	sampler := core.NewRandomSampler(random)

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	boxes := make([]geometry.Hittable, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := core.RandomRange(sampler, 1, 101)
			boxes = append(boxes, geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}

	camera := DefaultCameraConfig()
	camera.LookFrom = core.NewVec3(478, 278, -600)
	camera.LookAt = core.NewVec3(278, 278, 0)
	camera.VFov = 40
	camera.AspectRatio = 1

	objects := []geometry.Hittable{
		geometry.MustNewBVH(boxes, camera.Time0, camera.Time1),
		geometry.NewXZRect(123, 423, 147, 412, 554, material.NewDiffuseLight(core.NewVec3(7, 7, 7))),
	}

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	objects = append(objects,
		geometry.NewMovingSphere(center1, center2, 0, 1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))),
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// Glass shell around blue fog, and a thin mist over everything
	fogBoundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	mistBoundary := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	objects = append(objects,
		fogBoundary,
		geometry.NewConstantMediumColor(fogBoundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)),
		geometry.NewConstantMediumColor(mistBoundary, 0.0001, core.NewVec3(1, 1, 1)),
	)

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(b.earthTexture())),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
			material.NewTexturedLambertian(material.NewNoiseTexture(material.NewPerlin(random), 0.1))),
	)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	const clusterSize = 1000
	cluster := make([]geometry.Hittable, clusterSize)
	for i := range cluster {
		cluster[i] = geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white)
	}
	objects = append(objects, geometry.NewTranslate(
		geometry.NewRotateY(geometry.MustNewBVH(cluster, camera.Time0, camera.Time1), 15),
		core.NewVec3(-100, 270, 395),
	))

	return &Scene{
		World:          geometry.NewHittableList(objects...),
		Background:     integrator.NewSolidBackground(core.Vec3{}),
		CameraConfig:   camera,
		SamplingConfig: SamplingConfig{Width: 400, SamplesPerPixel: 200, MaxDepth: 50},
	}
}
