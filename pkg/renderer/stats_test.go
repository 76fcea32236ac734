package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPixelStats_AddSample(t *testing.T) {
	var ps PixelStats
	if !ps.GetColor().NearZero() {
		t.Errorf("Empty pixel should be black, got %v", ps.GetColor())
	}

	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))

	if ps.SampleCount != 2 {
		t.Fatalf("Expected 2 samples, got %d", ps.SampleCount)
	}
	if expected := core.NewVec3(0.5, 0.5, 0); !ps.GetColor().Equals(expected) {
		t.Errorf("Expected average %v, got %v", expected, ps.GetColor())
	}
}

func TestPixelStats_Variance(t *testing.T) {
	tests := []struct {
		name     string
		samples  []core.Vec3
		expected float64
	}{
		{"No samples", nil, 0},
		{"Single sample", []core.Vec3{core.NewVec3(1, 1, 1)}, 0},
		{"Constant samples", []core.Vec3{core.NewVec3(0.3, 0.3, 0.3), core.NewVec3(0.3, 0.3, 0.3)}, 0},
		{"Black and white", []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ps PixelStats
			for _, s := range tt.samples {
				ps.AddSample(s)
			}
			if got := ps.Variance(); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected variance %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestFramebuffer_AverageLuminance(t *testing.T) {
	// Red, green, blue and black average to a quarter of white
	fb := NewFramebuffer(2, 2)
	fb.At(0, 0).AddSample(core.NewVec3(1, 0, 0))
	fb.At(1, 0).AddSample(core.NewVec3(0, 1, 0))
	fb.At(0, 1).AddSample(core.NewVec3(0, 0, 1))
	fb.At(1, 1).AddSample(core.NewVec3(0, 0, 0))

	if got := fb.AverageLuminance(); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("Expected average luminance 0.25, got %f", got)
	}
}

func TestFramebuffer_RowAliasesPixels(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	row := fb.Row(1)
	if len(row) != 3 {
		t.Fatalf("Expected row length 3, got %d", len(row))
	}
	row[2].AddSample(core.NewVec3(1, 1, 1))
	if fb.At(2, 1).SampleCount != 1 {
		t.Error("Row should share storage with the framebuffer")
	}
	if fb.At(2, 0).SampleCount != 0 {
		t.Error("Writing row 1 should not touch row 0")
	}
}

func TestRenderStats_Add(t *testing.T) {
	var total RenderStats
	total.add(RenderStats{TotalPixels: 10, TotalSamples: 40, Scanlines: 1})
	total.add(RenderStats{TotalPixels: 10, TotalSamples: 20, Scanlines: 1})

	if total.TotalPixels != 20 || total.TotalSamples != 60 || total.Scanlines != 2 {
		t.Errorf("Unexpected totals %+v", total)
	}
	if total.AverageSamples != 3 {
		t.Errorf("Expected 3 average samples, got %f", total.AverageSamples)
	}
}
