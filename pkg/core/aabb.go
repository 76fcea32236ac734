package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]
	for _, point := range points[1:] {
		min = min.Min(point)
		max = max.Max(point)
	}

	return AABB{Min: min, Max: max}
}

// SurroundingBox returns the smallest AABB containing both boxes
func SurroundingBox(a, b AABB) AABB {
	return AABB{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// Hit tests if a ray intersects with this AABB using the slab method.
//
// A zero direction component gives an infinite reciprocal. When the origin
// also sits exactly on a slab face the slab bound is NaN; the comparisons
// below then leave the interval untouched instead of poisoning it.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (aabb.Min.Axis(axis) - origin) * invD
		t1 := (aabb.Max.Axis(axis) - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return SurroundingBox(aabb, other)
}

// Translate returns the box moved by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{Min: aabb.Min.Add(offset), Max: aabb.Max.Add(offset)}
}

// Contains reports whether other lies entirely inside this box
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && aabb.Min.Y <= other.Min.Y && aabb.Min.Z <= other.Min.Z &&
		aabb.Max.X >= other.Max.X && aabb.Max.Y >= other.Max.Y && aabb.Max.Z >= other.Max.Z
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Expand returns an AABB expanded by the given amount in all directions
func (aabb AABB) Expand(amount float64) AABB {
	expansion := NewVec3(amount, amount, amount)
	return AABB{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}

// Corners returns the eight corner points of the box
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := 0; i < 8; i++ {
		corners[i] = Vec3{
			X: pick(i&1 != 0, aabb.Max.X, aabb.Min.X),
			Y: pick(i&2 != 0, aabb.Max.Y, aabb.Min.Y),
			Z: pick(i&4 != 0, aabb.Max.Z, aabb.Min.Z),
		}
	}
	return corners
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

// emptyAABB is the identity for Union
var emptyAABB = AABB{
	Min: NewVec3(math.Inf(1), math.Inf(1), math.Inf(1)),
	Max: NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
}

// EmptyAABB returns an inverted box that any Union replaces
func EmptyAABB() AABB {
	return emptyAABB
}
