package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Request limits
const (
	maxWidth   = 2000
	maxSamples = 10000
	maxDepth   = 500
)

// Server handles web requests for the path tracer
type Server struct {
	port   int
	logger core.Logger // Server-side log, mirrored by every render's console
}

// NewServer creates a new web server
func NewServer(port int, logger core.Logger) *Server {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Server{port: port, logger: logger}
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	return mux
}

// Start serves the API until the listener fails
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Starting web server on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// SceneInfo describes a catalogue entry and its recommended sampling settings
type SceneInfo struct {
	Name            string `json:"name"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	SamplesPerPixel int    `json:"samplesPerPixel"`
	MaxDepth        int    `json:"maxDepth"`
}

// handleScenes lists every scene with its defaults, or one scene when ?scene= is set
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	names := scene.Names()
	if name := r.URL.Query().Get("scene"); name != "" {
		names = []string{name}
	}

	infos := make([]SceneInfo, 0, len(names))
	for _, name := range names {
		sc, err := scene.New(name, scene.Options{})
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		infos = append(infos, SceneInfo{
			Name:            name,
			Width:           sc.SamplingConfig.Width,
			Height:          sc.Height(sc.SamplingConfig.Width),
			SamplesPerPixel: sc.SamplingConfig.SamplesPerPixel,
			MaxDepth:        sc.SamplingConfig.MaxDepth,
		})
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(infos)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseInt64Param parses an unbounded 64-bit integer parameter
func parseInt64Param(values url.Values, key string, defaultValue int64) (int64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
