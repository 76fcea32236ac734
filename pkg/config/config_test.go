package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/scene"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "render.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Default config should validate, got %v", err)
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeFile(t, "scene: cornell\nwidth: 300\nseed: 7\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Scene != "cornell" || cfg.Width != 300 || cfg.Seed != 7 {
		t.Errorf("File values not applied: %+v", cfg)
	}
	if cfg.Format != FormatPPM {
		t.Errorf("Expected default format %s, got %s", FormatPPM, cfg.Format)
	}
	if cfg.SamplesPerPixel != 0 {
		t.Errorf("Unset samples should stay zero, got %d", cfg.SamplesPerPixel)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		contains string
	}{
		{"Malformed YAML", "scene: [cornell\n", "parsing config"},
		{"Wrong type", "width: wide\n", "parsing config"},
		{"Unknown scene", "scene: teapot\n", "unknown scene"},
		{"Bad format", "format: jpeg\n", "format must be"},
		{"Negative workers", "workers: -2\n", "workers must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.contents))
			if err == nil || !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Expected error containing %q, got %v", tt.contains, err)
			}
		})
	}
}

func TestLoad_UnknownSceneIsSentinel(t *testing.T) {
	_, err := Load(writeFile(t, "scene: teapot\n"))
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	original := &Config{
		Scene:           "final",
		Width:           800,
		SamplesPerPixel: 100,
		MaxDepth:        25,
		Workers:         3,
		Seed:            12345,
		Output:          "final.png",
		Format:          FormatPNG,
		EarthTexture:    "textures/earth.png",
	}

	path := filepath.Join(t.TempDir(), "saved.yaml")
	if err := Save(original, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *original {
		t.Errorf("Round trip mismatch:\nsaved  %+v\nloaded %+v", original, loaded)
	}
}

func TestApplySceneDefaults(t *testing.T) {
	sampling := scene.SamplingConfig{Width: 400, SamplesPerPixel: 50, MaxDepth: 10}

	cfg := &Config{Width: 200}
	cfg.ApplySceneDefaults(sampling)
	if cfg.Width != 200 {
		t.Errorf("Explicit width should win, got %d", cfg.Width)
	}
	if cfg.SamplesPerPixel != 50 || cfg.MaxDepth != 10 {
		t.Errorf("Zero values should take scene defaults, got %+v", cfg)
	}
}
