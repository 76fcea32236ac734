package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestConstantMedium_MeanFreePath(t *testing.T) {
	density := 0.5
	medium := NewConstantMediumColor(NewSphere(core.Vec3{}, 1000, nil), density, core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 2)) // unnormalized on purpose

	const tMin = 0.001
	const n = 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		hit, ok := medium.Hit(ray, tMin, math.Inf(1))
		if !ok {
			t.Fatal("A ray through a dense, huge medium should scatter")
		}
		sum += (hit.T - tMin) * ray.Direction.Length()
	}

	mean := sum / n
	if math.Abs(mean-1/density) > 0.1 {
		t.Errorf("Mean free path %f, expected %f", mean, 1/density)
	}
}

func TestConstantMedium_ScatterProbability(t *testing.T) {
	density := 0.5
	medium := NewConstantMediumColor(NewSphere(core.Vec3{}, 1, nil), density, core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	const n = 20000
	scattered := 0
	for i := 0; i < n; i++ {
		hit, ok := medium.Hit(ray, 0.001, math.Inf(1))
		if !ok {
			continue
		}
		scattered++
		if hit.T < 4 || hit.T > 6 {
			t.Fatalf("Scatter point t=%f outside the medium", hit.T)
		}
	}

	// Chord length 2 through the center: P(scatter) = 1 - e^(-2·density)
	expected := 1 - math.Exp(-2*density)
	if got := float64(scattered) / n; math.Abs(got-expected) > 0.03 {
		t.Errorf("Scatter probability %f, expected %f", got, expected)
	}
}

func TestConstantMedium_HitRecord(t *testing.T) {
	albedo := core.NewVec3(0.2, 0.4, 0.6)
	medium := NewConstantMediumColor(NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), nil), 1000, albedo)

	hit, ok := medium.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Very dense medium should scatter almost at the boundary")
	}
	if !hit.FrontFace || !hit.Normal.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Unexpected normal %v front %t", hit.Normal, hit.FrontFace)
	}
	iso, isIsotropic := hit.Material.(*material.Isotropic)
	if !isIsotropic {
		t.Fatalf("Expected isotropic phase function, got %T", hit.Material)
	}
	if got := iso.Albedo.Evaluate(core.Vec2{}, hit.Point); !got.Equals(albedo) {
		t.Errorf("Expected albedo %v, got %v", albedo, got)
	}
}

func TestConstantMedium_Misses(t *testing.T) {
	medium := NewConstantMediumColor(NewSphere(core.Vec3{}, 1, nil), 1000, core.NewVec3(1, 1, 1))

	// Misses the boundary entirely
	if _, ok := medium.Hit(core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(1, 0, 0)), 0.001, math.Inf(1)); ok {
		t.Error("Ray missing the boundary should miss the medium")
	}
	// Window ends before the medium starts
	if _, ok := medium.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0.001, 3); ok {
		t.Error("Ray window ending before the medium should miss")
	}
}

func TestConstantMedium_BoundingBox(t *testing.T) {
	boundary := NewSphere(core.NewVec3(1, 2, 3), 2, nil)
	medium := NewConstantMediumColor(boundary, 0.1, core.NewVec3(1, 1, 1))

	got, _ := medium.BoundingBox(0, 1)
	want, _ := boundary.BoundingBox(0, 1)
	if got != want {
		t.Errorf("Expected boundary box %v, got %v", want, got)
	}
}
