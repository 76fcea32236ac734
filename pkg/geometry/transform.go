package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate displaces a child object by Offset
type Translate struct {
	Object Hittable
	Offset core.Vec3
}

// NewTranslate wraps object so it appears moved by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit intersects the child with the ray moved into object space
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	moved := core.NewRayAt(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)

	hit, ok := tr.Object.Hit(moved, tMin, tMax)
	if !ok {
		return nil, false
	}

	// The direction is unchanged, so the child's normal and face already
	// agree with the world ray
	hit.Point = hit.Point.Add(tr.Offset)
	return hit, true
}

// BoundingBox returns the child box translated by Offset
func (tr *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := tr.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(tr.Offset), true
}

// RotateY rotates a child object about the Y axis
type RotateY struct {
	Object   Hittable
	sinTheta float64
	cosTheta float64
	box      core.AABB
}

// NewRotateY wraps object rotated by angle degrees about the Y axis.
// It panics when the child cannot be bounded.
func NewRotateY(object Hittable, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	childBox, ok := object.BoundingBox(0, 1)
	if !ok {
		panic(fmt.Sprintf("RotateY: %v: %T", ErrUnboundedObject, object))
	}

	// Conservative box around the 8 rotated corners of the child box
	corners := childBox.Corners()
	rotated := make([]core.Vec3, len(corners))
	for i, corner := range corners {
		rotated[i] = r.toWorld(corner)
	}
	r.box = core.NewAABBFromPoints(rotated...)

	return r
}

// toObject rotates a world-space vector into child space
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates a child-space vector into world space
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit intersects the child with the ray rotated into object space
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	rotated := core.NewRayAt(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	hit, ok := r.Object.Hit(rotated, tMin, tMax)
	if !ok {
		return nil, false
	}

	// Rotation preserves dot products, so the face side carries over
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the box precomputed at construction
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.box, true
}
