package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	const numSamples = 20000
	var mean Vec3
	for i := 0; i < numSamples; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Point %v is outside the unit sphere", p)
		}
		mean = mean.Add(p)
	}

	mean = mean.Multiply(1.0 / numSamples)
	if mean.Length() > 0.02 {
		t.Errorf("Mean of uniform points should be near origin, got %v", mean)
	}
}

func TestRandomUnitVector(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit vector, got length %f", v.Length())
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 || p.LengthSquared() >= 1.0 {
			t.Fatalf("Point %v is not inside the unit disk", p)
		}
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(7)
	b := NewSeededSampler(7)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Samplers with equal seeds should produce equal sequences")
		}
	}
}

func TestRandomRange(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		v := RandomRange(sampler, -2, 5)
		if v < -2 || v >= 5 {
			t.Fatalf("Value %f outside [-2, 5)", v)
		}
	}
}
