package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// minRectPadding is the smallest half-thickness of a rectangle's box
const minRectPadding = 1e-4

// rectPadding returns the half-thickness of the box around a plane at k,
// so the box never degenerates to zero width
func rectPadding(k float64) float64 {
	return math.Max(0.001*math.Abs(k), minRectPadding)
}

// planeT solves origin + t·dir = k along one axis. Parallel rays (infinite
// or NaN t) and out-of-window values report a miss.
func planeT(origin, direction, k, tMin, tMax float64) (float64, bool) {
	t := (k - origin) / direction
	if math.IsNaN(t) || math.IsInf(t, 0) || t < tMin || t > tMax {
		return 0, false
	}
	return t, true
}

// XYRect is an axis-aligned rectangle in the plane z = K
type XYRect struct {
	X0, X1, Y0, Y1, K float64
	Material          material.Material
}

// NewXYRect creates a rectangle spanning [x0,x1]×[y0,y1] at z = k
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: mat}
}

// Hit tests if a ray intersects with the rectangle
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	t, ok := planeT(ray.Origin.Z, ray.Direction.Z, r.K, tMin, tMax)
	if !ok {
		return nil, false
	}

	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		UV:       core.NewVec2((x-r.X0)/(r.X1-r.X0), (y-r.Y0)/(r.Y1-r.Y0)),
		Point:    ray.At(t),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, core.NewVec3(0, 0, 1))
	return hitRecord, true
}

// BoundingBox returns the rectangle padded slightly along Z
func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	pad := rectPadding(r.K)
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-pad),
		core.NewVec3(r.X1, r.Y1, r.K+pad),
	), true
}

// XZRect is an axis-aligned rectangle in the plane y = K
type XZRect struct {
	X0, X1, Z0, Z1, K float64
	Material          material.Material
}

// NewXZRect creates a rectangle spanning [x0,x1]×[z0,z1] at y = k
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: mat}
}

// Hit tests if a ray intersects with the rectangle
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	t, ok := planeT(ray.Origin.Y, ray.Direction.Y, r.K, tMin, tMax)
	if !ok {
		return nil, false
	}

	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if x < r.X0 || x > r.X1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		UV:       core.NewVec2((x-r.X0)/(r.X1-r.X0), (z-r.Z0)/(r.Z1-r.Z0)),
		Point:    ray.At(t),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, core.NewVec3(0, 1, 0))
	return hitRecord, true
}

// BoundingBox returns the rectangle padded slightly along Y
func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	pad := rectPadding(r.K)
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-pad, r.Z0),
		core.NewVec3(r.X1, r.K+pad, r.Z1),
	), true
}

// YZRect is an axis-aligned rectangle in the plane x = K
type YZRect struct {
	Y0, Y1, Z0, Z1, K float64
	Material          material.Material
}

// NewYZRect creates a rectangle spanning [y0,y1]×[z0,z1] at x = k
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: mat}
}

// Hit tests if a ray intersects with the rectangle
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	t, ok := planeT(ray.Origin.X, ray.Direction.X, r.K, tMin, tMax)
	if !ok {
		return nil, false
	}

	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if y < r.Y0 || y > r.Y1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		UV:       core.NewVec2((y-r.Y0)/(r.Y1-r.Y0), (z-r.Z0)/(r.Z1-r.Z0)),
		Point:    ray.At(t),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, core.NewVec3(1, 0, 0))
	return hitRecord, true
}

// BoundingBox returns the rectangle padded slightly along X
func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	pad := rectPadding(r.K)
	return core.NewAABB(
		core.NewVec3(r.K-pad, r.Y0, r.Z0),
		core.NewVec3(r.K+pad, r.Y1, r.Z1),
	), true
}
