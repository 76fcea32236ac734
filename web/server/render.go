package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// SSEEvent is one server-sent event of a render stream
type SSEEvent struct {
	Type string `json:"type"` // "console", "error", "complete"
	Data string `json:"data"`
}

// RenderResult is the payload of the final "complete" event
type RenderResult struct {
	Scene          string  `json:"scene"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	ImageData      string  `json:"imageData"` // Base64 encoded PNG
	TotalSamples   int     `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	ElapsedMs      int64   `json:"elapsedMs"`
}

var renderCounter atomic.Int64

// handleRender renders the requested scene and streams console output
// followed by the finished image as server-sent events
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	cfg, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeSSEEvent(w, SSEEvent{Type: "error", Data: fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	ctx := r.Context()
	events := make(chan SSEEvent, 100)
	renderID := fmt.Sprintf("render-%d", renderCounter.Add(1))
	logger := NewWebLogger(renderID, events, s.logger)

	go func() {
		defer close(events)
		s.render(ctx, cfg, logger, events)
	}()

	// Single writer: events are drained until the render stops, but only
	// written while the client is connected
	for event := range events {
		if ctx.Err() != nil {
			continue
		}
		if err := s.writeSSEEvent(w, event); err != nil {
			s.logger.Printf("[%s] client write failed: %v\n", renderID, err)
		}
	}
}

// render runs one render and queues its final event
func (s *Server) render(ctx context.Context, cfg *config.Config, logger *WebLogger, events chan<- SSEEvent) {
	start := time.Now()
	fail := func(err error) {
		events <- SSEEvent{Type: "error", Data: err.Error()}
	}

	sc, err := scene.New(cfg.Scene, scene.Options{Seed: cfg.Seed, Logger: logger})
	if err != nil {
		fail(err)
		return
	}
	cfg.ApplySceneDefaults(sc.SamplingConfig)

	rt, err := renderer.NewRaytracer(sc, renderer.Config{
		Width:           cfg.Width,
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        cfg.MaxDepth,
		Seed:            cfg.Seed,
	}, logger)
	if err != nil {
		fail(err)
		return
	}

	fb, stats, err := rt.Render(ctx)
	if err != nil {
		fail(fmt.Errorf("render error: %w", err))
		return
	}

	imageData, err := framebufferToBase64PNG(fb)
	if err != nil {
		fail(err)
		return
	}

	data, err := json.Marshal(RenderResult{
		Scene:          sc.Name,
		Width:          fb.Width,
		Height:         fb.Height,
		ImageData:      imageData,
		TotalSamples:   stats.TotalSamples,
		AverageSamples: stats.AverageSamples,
		ElapsedMs:      time.Since(start).Milliseconds(),
	})
	if err != nil {
		fail(err)
		return
	}
	events <- SSEEvent{Type: "complete", Data: string(data)}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvent writes and flushes a single event
func (s *Server) writeSSEEvent(w http.ResponseWriter, event SSEEvent) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
		return err
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}

// parseRenderRequest parses request parameters into a validated render config.
// Omitted sampling parameters stay zero and fall back to the scene's defaults.
func (s *Server) parseRenderRequest(r *http.Request) (*config.Config, error) {
	query := r.URL.Query()
	cfg := config.DefaultConfig()
	cfg.Scene = "cornell"
	cfg.Format = config.FormatPNG

	if name := query.Get("scene"); name != "" {
		cfg.Scene = name
	}

	var err error
	if cfg.Width, err = parseIntParam(query, "width", 0, 1, maxWidth); err != nil {
		return nil, err
	}
	if cfg.SamplesPerPixel, err = parseIntParam(query, "samples", 0, 1, maxSamples); err != nil {
		return nil, err
	}
	if cfg.MaxDepth, err = parseIntParam(query, "depth", 0, 1, maxDepth); err != nil {
		return nil, err
	}
	if cfg.Seed, err = parseInt64Param(query, "seed", 0); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// framebufferToBase64PNG encodes a framebuffer as base64 PNG
func framebufferToBase64PNG(fb *renderer.Framebuffer) (string, error) {
	var buf bytes.Buffer
	if err := renderer.WritePNG(&buf, fb); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
