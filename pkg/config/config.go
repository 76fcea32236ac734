package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v2"

	"github.com/df07/go-pathtracer/pkg/scene"
)

// Output formats
const (
	FormatPPM = "ppm"
	FormatPNG = "png"
)

// Config holds the render settings read from a YAML file.
// Zero sampling values fall back to the scene's recommendations.
type Config struct {
	Scene           string `yaml:"scene"`
	Width           int    `yaml:"width"`
	SamplesPerPixel int    `yaml:"samples_per_pixel"`
	MaxDepth        int    `yaml:"max_depth"`
	Workers         int    `yaml:"workers"` // 0 means one per CPU
	Seed            int64  `yaml:"seed"`
	Output          string `yaml:"output"` // Empty writes to stdout
	Format          string `yaml:"format"` // ppm or png
	EarthTexture    string `yaml:"earth_texture"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Scene:  "random",
		Format: FormatPPM,
	}
}

// Load reads a configuration file, overlaying its values on the defaults
func Load(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", filePath, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filePath, err)
	}
	return config, nil
}

// Save writes the configuration to a file
func Save(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks field ranges and the scene name
func (c *Config) Validate() error {
	if !slices.Contains(scene.Names(), c.Scene) {
		return fmt.Errorf("%w: %q", scene.ErrUnknownScene, c.Scene)
	}
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}
	if c.SamplesPerPixel < 0 {
		return fmt.Errorf("samples_per_pixel must not be negative, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Format != FormatPPM && c.Format != FormatPNG {
		return fmt.Errorf("format must be %s or %s, got %q", FormatPPM, FormatPNG, c.Format)
	}
	return nil
}

// ApplySceneDefaults fills zero sampling values from the scene's recommendations
func (c *Config) ApplySceneDefaults(sampling scene.SamplingConfig) {
	if c.Width == 0 {
		c.Width = sampling.Width
	}
	if c.SamplesPerPixel == 0 {
		c.SamplesPerPixel = sampling.SamplesPerPixel
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = sampling.MaxDepth
	}
}
