package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by queueing console events for a render stream
type WebLogger struct {
	renderID string
	events   chan<- SSEEvent
	mirror   core.Logger
}

// NewWebLogger creates a new web logger for a specific render.
// Messages are also written to mirror when it is not nil.
func NewWebLogger(renderID string, events chan<- SSEEvent, mirror core.Logger) *WebLogger {
	return &WebLogger{
		renderID: renderID,
		events:   events,
		mirror:   mirror,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if wl.mirror != nil {
		wl.mirror.Printf("[%s] %s", wl.renderID, message)
	}
	if wl.events == nil {
		return
	}

	data, err := json.Marshal(ConsoleMessage{
		RenderID:  wl.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     "info",
	})
	if err != nil {
		return
	}

	// Non-blocking; a slow client loses console lines, never render time
	select {
	case wl.events <- SSEEvent{Type: "console", Data: string(data)}:
	default:
	}
}
