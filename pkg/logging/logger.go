// Package logging provides component-scoped structured loggers.
//
// Every logger carries the component name and a process-wide run ID so that
// records from concurrent sessions can be correlated after the fact.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	// runID identifies this process in every log record.
	runID     string
	runIDOnce sync.Once

	defaults   Settings
	defaultsMu sync.Mutex
)

// Settings controls handler selection for new loggers.
type Settings struct {
	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level string

	// Format is "json" or "text". Unknown values mean text.
	Format string

	// Output defaults to stderr so log records never mix with payload output.
	Output io.Writer
}

// Configure sets the process-wide defaults used by New. Safe to call more
// than once; later calls win.
func Configure(s Settings) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = s
}

// New returns a logger tagged with the given component name.
func New(component string) *slog.Logger {
	defaultsMu.Lock()
	s := defaults
	defaultsMu.Unlock()

	out := s.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLevel(s.Level)}

	var handler slog.Handler
	if strings.EqualFold(s.Format, "json") {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler).With(
		slog.String("component", component),
		slog.String("run_id", getRunID()),
	)
}

func getRunID() string {
	runIDOnce.Do(func() {
		runID = uuid.New().String()
	})
	return runID
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
