package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func main() {
	logger := renderer.NewDefaultLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, renders the selected scene and writes the image to
// the configured file, or to stdout when no output path is set
func run(ctx context.Context, args []string, stdout io.Writer, logger core.Logger) error {
	cfg, list, err := parseConfig(args, stdout)
	if err != nil {
		return err
	}
	if list {
		for _, name := range scene.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	sc, err := scene.New(cfg.Scene, scene.Options{
		Seed:         cfg.Seed,
		EarthTexture: cfg.EarthTexture,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	cfg.ApplySceneDefaults(sc.SamplingConfig)
	logger.Printf("Using %s scene\n", sc.Name)

	if bvh, ok := sc.World.(*geometry.BVH); ok {
		stats := bvh.Stats()
		logger.Printf("BVH: %d objects, %d nodes, %d leaves, max depth %d, avg depth %.1f\n",
			stats.TotalObjects, stats.TotalNodes, stats.LeafNodes, stats.MaxDepth, stats.AvgDepth)
	}

	rt, err := renderer.NewRaytracer(sc, renderer.Config{
		Width:           cfg.Width,
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        cfg.MaxDepth,
		NumWorkers:      cfg.Workers,
		Seed:            cfg.Seed,
	}, logger)
	if err != nil {
		return err
	}

	fb, stats, err := rt.Render(ctx)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", sc.Name, err)
	}
	logger.Printf("Samples per pixel: %.1f, average luminance %.3f\n", stats.AverageSamples, fb.AverageLuminance())

	return writeImage(cfg, fb, stdout, logger)
}

// parseConfig builds the render config from an optional YAML file and
// flags. Flags that were set explicitly override file values.
func parseConfig(args []string, stdout io.Writer) (*config.Config, bool, error) {
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(stdout)

	defaults := config.DefaultConfig()
	configPath := fs.String("config", "", "YAML render config file")
	sceneName := fs.String("scene", defaults.Scene, "Scene name: "+strings.Join(scene.Names(), ", "))
	width := fs.Int("width", 0, "Image width in pixels (0 = scene default)")
	samples := fs.Int("spp", 0, "Samples per pixel (0 = scene default)")
	depth := fs.Int("depth", 0, "Maximum bounce depth (0 = scene default)")
	workers := fs.Int("workers", 0, "Parallel workers (0 = one per CPU)")
	seed := fs.Int64("seed", 0, "Random seed for scene construction and sampling")
	output := fs.String("output", "", "Output file (empty = stdout)")
	format := fs.String("format", "", "Output format: ppm or png (default from output extension)")
	earth := fs.String("earth", "", "Image for the earth scenes")
	list := fs.Bool("list", false, "List available scenes and exit")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Path Tracer")
		fmt.Fprintln(fs.Output(), "Usage: pathtracer [options]")
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}
	if *list {
		return nil, true, nil
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, false, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *sceneName
		case "width":
			cfg.Width = *width
		case "spp":
			cfg.SamplesPerPixel = *samples
		case "depth":
			cfg.MaxDepth = *depth
		case "workers":
			cfg.Workers = *workers
		case "seed":
			cfg.Seed = *seed
		case "output":
			cfg.Output = *output
		case "format":
			cfg.Format = *format
		case "earth":
			cfg.EarthTexture = *earth
		}
	})
	if *format == "" && strings.EqualFold(filepath.Ext(cfg.Output), ".png") {
		cfg.Format = config.FormatPNG
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return cfg, false, nil
}

// writeImage encodes fb in the configured format
func writeImage(cfg *config.Config, fb *renderer.Framebuffer, stdout io.Writer, logger core.Logger) error {
	encode := renderer.WritePPM
	if cfg.Format == config.FormatPNG {
		encode = renderer.WritePNG
	}

	if cfg.Output == "" {
		return encode(stdout, fb)
	}

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := encode(file, fb); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}

	logger.Printf("Render saved as %s\n", cfg.Output)
	return nil
}
