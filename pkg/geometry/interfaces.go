package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable interface for objects that can be hit by rays
type Hittable interface {
	// Hit returns the nearest intersection with t in [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	// BoundingBox returns a box enclosing the object over the shutter
	// interval [time0, time1], or false for unbounded objects
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}
