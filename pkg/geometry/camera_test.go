package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCamera_PinholeRays(t *testing.T) {
	camera := NewCamera(CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 2,
	})
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	tests := []struct {
		name     string
		s, t     float64
		expected core.Vec3
	}{
		{"Center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"Bottom left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"Top right", 1, 1, core.NewVec3(2, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, sampler)
			if !ray.Origin.Equals(core.Vec3{}) {
				t.Errorf("Pinhole ray should start at the camera, got %v", ray.Origin)
			}
			if !vecClose(ray.Direction, tt.expected, 1e-12) {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCamera_DefocusConvergesAtFocusPlane(t *testing.T) {
	lookFrom := core.NewVec3(13, 2, 3)
	lookAt := core.NewVec3(0, 0, 0)
	focus := 10.0
	camera := NewCamera(CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   1.5,
		Aperture:      0.5,
		FocusDistance: focus,
	})
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	focalPoint := lookFrom.Add(lookAt.Subtract(lookFrom).Normalize().Multiply(focus))
	sawOffset := false
	for i := 0; i < 200; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		if d := ray.Origin.Subtract(lookFrom).Length(); d > 0.25+1e-12 {
			t.Fatalf("Ray origin %f from the camera exceeds the lens radius", d)
		} else if d > 0 {
			sawOffset = true
		}
		if p := ray.At(1); !vecClose(p, focalPoint, 1e-9) {
			t.Fatalf("Center rays should meet at the focal point %v, got %v", focalPoint, p)
		}
	}
	if !sawOffset {
		t.Error("Nonzero aperture should offset ray origins")
	}
}

func TestCamera_DefaultFocusDistance(t *testing.T) {
	camera := NewCamera(CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 1,
		Aperture:    1,
	})
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))

	for i := 0; i < 50; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		if p := ray.At(1); !vecClose(p, core.Vec3{}, 1e-9) {
			t.Fatalf("Zero focus distance should focus on LookAt, got %v", p)
		}
	}
}

func TestCamera_ShutterTimes(t *testing.T) {
	camera := NewCamera(CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        60,
		AspectRatio: 1,
		Time0:       0.2,
		Time1:       0.7,
	})
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	minTime, maxTime := math.Inf(1), math.Inf(-1)
	for i := 0; i < 1000; i++ {
		ray := camera.GetRay(0.3, 0.6, sampler)
		if ray.Time < 0.2 || ray.Time >= 0.7 {
			t.Fatalf("Ray time %f outside shutter [0.2, 0.7)", ray.Time)
		}
		minTime = math.Min(minTime, ray.Time)
		maxTime = math.Max(maxTime, ray.Time)
	}
	if maxTime-minTime < 0.4 {
		t.Errorf("Ray times should span the shutter, got [%f, %f]", minTime, maxTime)
	}
}
