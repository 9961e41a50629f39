// Package klog provides the ambient structured logging used for optional
// diagnostic tracing inside the container package. It is adapted from the
// host module's slog-based logger: a thin wrapper adding child loggers per
// subsystem, never required for correctness.
package klog

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with container-specific conveniences.
type Logger struct {
	inner *slog.Logger
}

var discard = &Logger{inner: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levelAboveAll}))}

// levelAboveAll is higher than any level slog defines, so the discard
// logger's handler never actually emits anything.
const levelAboveAll = slog.Level(1 << 20)

// Discard returns a Logger that drops every record.
func Discard() *Logger { return discard }

// New creates a Logger writing text lines to standard error at the given
// level.
func New(level slog.Level) *Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{inner: slog.New(h)}
}

// Scope returns a child logger tagged with a "scope" attribute, used to
// attribute trace lines to the container name or kind that emitted them.
func (l *Logger) Scope(name string) *Logger {
	if l == nil {
		return discard
	}
	return &Logger{inner: l.inner.With("scope", name)}
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, args ...any) {
	if l == nil {
		return
	}
	l.inner.Debug(msg, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, args ...any) {
	if l == nil {
		return
	}
	l.inner.Warn(msg, args...)
}
