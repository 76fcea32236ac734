package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box represents an axis-aligned cuboid made up of 6 rectangles
type Box struct {
	Min   core.Vec3
	Max   core.Vec3
	sides *HittableList
}

// NewBox creates a box spanning the corners p0 and p1 with one material on every face
func NewBox(p0, p1 core.Vec3, mat material.Material) *Box {
	lo := p0.Min(p1)
	hi := p0.Max(p1)

	sides := NewHittableList(
		NewXYRect(lo.X, hi.X, lo.Y, hi.Y, hi.Z, mat), // front
		NewXYRect(lo.X, hi.X, lo.Y, hi.Y, lo.Z, mat), // back
		NewXZRect(lo.X, hi.X, lo.Z, hi.Z, hi.Y, mat), // top
		NewXZRect(lo.X, hi.X, lo.Z, hi.Z, lo.Y, mat), // bottom
		NewYZRect(lo.Y, hi.Y, lo.Z, hi.Z, hi.X, mat), // right
		NewYZRect(lo.Y, hi.Y, lo.Z, hi.Z, lo.X, mat), // left
	)

	return &Box{Min: lo, Max: hi, sides: sides}
}

// Hit returns the nearest face hit
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the exact box extent
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
