package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// ErrInvalidConfig is returned for render settings that cannot produce an image
var ErrInvalidConfig = errors.New("invalid render config")

// DefaultSeed seeds per-row samplers when Config.Seed is zero
const DefaultSeed = 1

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels, derived from the camera aspect ratio when zero
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Parallel scanline workers, one per CPU when zero
	Seed            int64 // Base seed for pixel sampling, DefaultSeed when zero
}

// Raytracer renders a scene into a framebuffer
type Raytracer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	integrator integrator.Integrator
	background integrator.Background
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a raytracer for sc, filling unset dimensions from the scene
func NewRaytracer(sc *scene.Scene, config Config, logger core.Logger) (*Raytracer, error) {
	if sc == nil || sc.World == nil {
		return nil, fmt.Errorf("%w: scene has no world", ErrInvalidConfig)
	}
	if config.Width <= 0 {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidConfig, config.Width)
	}
	if config.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("%w: samples per pixel %d", ErrInvalidConfig, config.SamplesPerPixel)
	}
	if config.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: max depth %d", ErrInvalidConfig, config.MaxDepth)
	}
	if config.Height <= 0 {
		config.Height = sc.Height(config.Width)
	}
	if config.Seed == 0 {
		config.Seed = DefaultSeed
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	background := sc.Background
	if background == nil {
		background = integrator.NewSolidBackground(core.Vec3{})
	}

	return &Raytracer{
		scene:      sc,
		camera:     geometry.NewCamera(sc.CameraConfig),
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		background: background,
		config:     config,
		logger:     logger,
	}, nil
}

// Config returns the effective render configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// rowSeed derives an independent, reproducible seed for each raster row
func rowSeed(seed int64, row int) int64 {
	return int64(uint64(seed) ^ (uint64(row)+1)*0x9E3779B97F4A7C15)
}

// RenderScanline renders raster row y into pixels, which must hold Width entries
func (rt *Raytracer) RenderScanline(y int, pixels []PixelStats) RenderStats {
	width, height := rt.config.Width, rt.config.Height
	sampler := core.NewSeededSampler(rowSeed(rt.config.Seed, y))

	// Camera v runs bottom to top, raster rows top to bottom
	j := height - 1 - y
	uScale := 1.0 / float64(max(width-1, 1))
	vScale := 1.0 / float64(max(height-1, 1))

	stats := RenderStats{Scanlines: 1}
	for i := 0; i < width; i++ {
		pixel := &pixels[i]
		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			u := (float64(i) + sampler.Get1D()) * uScale
			v := (float64(j) + sampler.Get1D()) * vScale

			ray := rt.camera.GetRay(u, v, sampler)
			pixel.AddSample(rt.integrator.RayColor(ray, rt.scene.World, rt.background, sampler))
		}
		stats.TotalPixels++
		stats.TotalSamples += rt.config.SamplesPerPixel
	}
	stats.AverageSamples = float64(stats.TotalSamples) / float64(max(stats.TotalPixels, 1))
	return stats
}

// Render traces every pixel using the worker pool. Cancellation is checked
// between scanlines; a cancelled render returns the context error.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	start := time.Now()
	width, height := rt.config.Width, rt.config.Height
	fb := NewFramebuffer(width, height)

	pool := NewWorkerPool(rt, rt.config.NumWorkers, height)
	rt.logger.Printf("Rendering %s at %dx%d, %d spp, depth %d, %d workers\n",
		rt.scene.Name, width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, pool.GetNumWorkers())
	pool.Start(ctx)

	for y := 0; y < height; y++ {
		pool.SubmitTask(ScanlineTask{Row: y, Pixels: fb.Row(y)})
	}

	var stats RenderStats
	progressStep := max(height/10, 1)
	for completed := 1; completed <= height; completed++ {
		result, _ := pool.GetResult()
		stats.add(result.Stats)
		if !result.Skipped && completed%progressStep == 0 {
			rt.logger.Printf("Scanlines remaining: %d\n", height-completed)
		}
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	if err := ctx.Err(); err != nil && stats.Scanlines < height {
		rt.logger.Printf("Render cancelled after %d of %d scanlines\n", stats.Scanlines, height)
		return nil, stats, err
	}

	rt.logger.Printf("Render completed in %v (%d samples)\n", stats.Duration, stats.TotalSamples)
	return fb, stats, nil
}
