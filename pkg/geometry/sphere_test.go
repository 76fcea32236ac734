package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, 5),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      2.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !vecClose(hit.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected glancing hit, but got miss")
	}

	if !vecClose(hit.Point, core.NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("Expected hit point (1,0,0), got %v", hit.Point)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	if hit, isHit := sphere.Hit(ray, 0.001, 0.5); isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}
	if hit, isHit := sphere.Hit(ray, 3.5, 1000.0); isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// tMin past the near root returns the far root
	hit, isHit := sphere.Hit(ray, 1.5, 1000.0)
	if !isHit || math.Abs(hit.T-3.0) > 1e-9 {
		t.Fatalf("Expected far root at t=3, got %v %v", hit, isHit)
	}
	if hit.FrontFace {
		t.Error("Far root should be a back face hit")
	}
}

func TestSphere_Hit_CarriesMaterial(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, -3), 1.0, mat)

	hit, ok := sphere.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.Material != mat {
		t.Error("Hit record should carry the sphere material")
	}
}

func TestSphereUV(t *testing.T) {
	tests := []struct {
		name  string
		point core.Vec3
		u, v  float64
	}{
		{"+X", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"+Y", core.NewVec3(0, 1, 0), 0.5, 1.0},
		{"-Y", core.NewVec3(0, -1, 0), 0.5, 0.0},
		{"-X", core.NewVec3(-1, 0, 0), 0.0, 0.5},
		{"+Z", core.NewVec3(0, 0, 1), 0.25, 0.5},
		{"-Z", core.NewVec3(0, 0, -1), 0.75, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := SphereUV(tt.point)
			if math.Abs(uv.X-tt.u) > 1e-9 || math.Abs(uv.Y-tt.v) > 1e-9 {
				t.Errorf("Expected uv (%f,%f), got (%f,%f)", tt.u, tt.v, uv.X, uv.Y)
			}
		})
	}
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 0, 1, 0.5, nil)

	if c := sphere.Center(0.5); !vecClose(c, core.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected center (0,1,0) at t=0.5, got %v", c)
	}

	// Ray along X at y=2 only hits when the sphere has arrived
	early := core.NewRayAt(core.NewVec3(-5, 2, 0), core.NewVec3(1, 0, 0), 0)
	late := core.NewRayAt(core.NewVec3(-5, 2, 0), core.NewVec3(1, 0, 0), 1)
	if _, ok := sphere.Hit(early, 0.001, math.Inf(1)); ok {
		t.Error("Ray at time 0 should miss the moving sphere")
	}
	if _, ok := sphere.Hit(late, 0.001, math.Inf(1)); !ok {
		t.Error("Ray at time 1 should hit the moving sphere")
	}

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Moving sphere should have a bounding box")
	}
	expected := core.NewAABB(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(0.5, 2.5, 0.5))
	if !vecClose(box.Min, expected.Min, 1e-12) || !vecClose(box.Max, expected.Max, 1e-12) {
		t.Errorf("Expected swept box %v, got %v", expected, box)
	}
}
