package renderer

import (
	"log"
	"os"
)

// DefaultLogger writes progress to standard error with timestamps
type DefaultLogger struct {
	logger *log.Logger
}

// NewDefaultLogger creates a logger on standard error
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{logger: log.New(os.Stderr, "", log.LstdFlags)}
}

// Printf logs a formatted message
func (l *DefaultLogger) Printf(format string, args ...interface{}) {
	l.logger.Printf(format, args...)
}
