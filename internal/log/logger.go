// Package log is a small leveled logger on top of log/slog. Log lines and
// single-line progress updates share one writer, so both are serialized.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Verbosity levels
const (
	LevelQuiet = iota // Default: only errors and warnings
	LevelInfo         // -v: counts and phases
	LevelDebug        // -vv: every API call
	LevelTrace        // -vvv: per-PR details and rate limit headers
)

const slogLevelTrace = slog.Level(-8) // Below debug

var (
	mu         sync.Mutex
	verbosity  int
	logger     *slog.Logger
	output     io.Writer
	inProgress bool // an unterminated progress line is on screen
)

// Initialize sets up the global logger with the specified verbosity level
func Initialize(level int, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	verbosity = level
	output = w
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slogLevel(level),
	}))
	inProgress = false
}

func slogLevel(level int) slog.Level {
	switch {
	case level >= LevelTrace:
		return slogLevelTrace
	case level >= LevelDebug:
		return slog.LevelDebug
	case level >= LevelInfo:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

func logAt(minVerbosity int, level slog.Level, msg string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if verbosity < minVerbosity {
		return
	}
	if inProgress {
		_, _ = fmt.Fprintln(output) // keep the progress line, start a new one
		inProgress = false
	}
	logger.Log(context.Background(), level, msg, args...)
}

// Info logs at info level (-v)
func Info(msg string, args ...any) { logAt(LevelInfo, slog.LevelInfo, msg, args...) }

// Debug logs at debug level (-vv)
func Debug(msg string, args ...any) { logAt(LevelDebug, slog.LevelDebug, msg, args...) }

// Trace logs at trace level (-vvv)
func Trace(msg string, args ...any) { logAt(LevelTrace, slogLevelTrace, msg, args...) }

// Warn logs at warn level (always visible)
func Warn(msg string, args ...any) { logAt(LevelQuiet, slog.LevelWarn, msg, args...) }

// Error logs at error level (always visible)
func Error(msg string, args ...any) { logAt(LevelQuiet, slog.LevelError, msg, args...) }

// Progress rewrites the current line with a progress message.
// Only shown at info level or higher.
func Progress(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if verbosity < LevelInfo {
		return
	}
	inProgress = true
	_, _ = fmt.Fprintf(output, "\r"+format, args...)
}

// ProgressDone completes a progress line with "done" and a newline.
func ProgressDone() {
	mu.Lock()
	defer mu.Unlock()
	if verbosity >= LevelInfo && inProgress {
		_, _ = fmt.Fprintln(output, " done")
		inProgress = false
	}
}

// Verbosity returns the current verbosity level
func Verbosity() int {
	mu.Lock()
	defer mu.Unlock()
	return verbosity
}

func init() {
	Initialize(LevelQuiet, os.Stderr)
}
