package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape. A moving sphere travels linearly from
// Center0 at Time0 to Center1 at Time1.
type Sphere struct {
	Center0  core.Vec3
	Center1  core.Vec3
	Time0    float64
	Time1    float64
	Radius   float64
	Material material.Material
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center0:  center,
		Center1:  center,
		Radius:   radius,
		Material: mat,
	}
}

// NewMovingSphere creates a sphere whose center moves from center0 to center1
// between time0 and time1
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: mat,
	}
}

// Center returns the sphere center at the given time
func (s *Sphere) Center(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	fraction := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(fraction))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	center := s.Center(ray.Time)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hitRecord.Point.Subtract(center).Multiply(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)
	hitRecord.UV = SphereUV(outwardNormal)

	return hitRecord, true
}

// BoundingBox returns the box swept by the sphere over [time0, time1]
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	c0 := s.Center(time0)
	c1 := s.Center(time1)
	box0 := core.NewAABB(c0.Subtract(radius), c0.Add(radius))
	box1 := core.NewAABB(c1.Subtract(radius), c1.Add(radius))
	return core.SurroundingBox(box0, box1), true
}

// SphereUV maps a point on the unit sphere to texture coordinates:
// u is the angle around the Y axis from X=-1, v the angle from Y=-1
func SphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
