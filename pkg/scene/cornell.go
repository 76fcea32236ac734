package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// cornellWalls returns the five walls of the box, without the light
func cornellWalls() []geometry.Hittable {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return []geometry.Hittable{
		geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green), // left wall as seen from the camera
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),       // floor
		geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white), // ceiling
		geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white), // back wall
	}
}

// cornellBlocks returns the tall and short blocks, rotated and placed
func cornellBlocks(mat material.Material) (tall, short geometry.Hittable) {
	tall = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat), 15),
		core.NewVec3(265, 0, 295),
	)
	short = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat), -18),
		core.NewVec3(130, 0, 65),
	)
	return tall, short
}

func cornellCamera() geometry.CameraConfig {
	camera := DefaultCameraConfig()
	camera.LookFrom = core.NewVec3(278, 278, -800)
	camera.LookAt = core.NewVec3(278, 278, 0)
	camera.VFov = 40
	camera.AspectRatio = 1
	return camera
}

// newCornellScene creates the classic Cornell box with two blocks
func newCornellScene(b *builder) *Scene {
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	objects := cornellWalls()
	objects = append(objects, geometry.NewXZRect(213, 343, 227, 332, 554, light))
	tall, short := cornellBlocks(white)
	objects = append(objects, tall, short)

	camera := cornellCamera()
	return &Scene{
		World:          world(objects, camera),
		Background:     integrator.NewSolidBackground(core.Vec3{}),
		CameraConfig:   camera,
		SamplingConfig: SamplingConfig{Width: 400, SamplesPerPixel: 200, MaxDepth: 50},
	}
}

// newCornellSmokeScene replaces the blocks with black and white smoke
func newCornellSmokeScene(b *builder) *Scene {
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	objects := cornellWalls()
	objects = append(objects, geometry.NewXZRect(113, 443, 127, 432, 554, light))
	tall, short := cornellBlocks(white)
	objects = append(objects,
		geometry.NewConstantMediumColor(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMediumColor(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	camera := cornellCamera()
	return &Scene{
		World:          world(objects, camera),
		Background:     integrator.NewSolidBackground(core.Vec3{}),
		CameraConfig:   camera,
		SamplingConfig: SamplingConfig{Width: 400, SamplesPerPixel: 200, MaxDepth: 50},
	}
}
