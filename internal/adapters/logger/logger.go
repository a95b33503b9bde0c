// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/onto/internal/core/ports"
	"go.trai.ch/onto/internal/ui/style"
)

var _ ports.Logger = (*Logger)(nil)

// messager describes an error that can report its own message without the chain.
// zerr errors and the domain kind errors both implement it.
type messager interface {
	Message() string
}

// metadataer describes an error that carries structured key/value context.
type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	level    *slog.LevelVar
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a Logger writing pretty output to stderr at info level.
func New() *Logger {
	l := &Logger{
		level:  &slog.LevelVar{},
		output: os.Stderr,
	}
	l.rebuild()
	return l
}

// rebuild swaps the handler. Must be called with l.mu held or before l is shared.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: l.level}
	if l.jsonMode {
		l.logger = slog.New(slog.NewJSONHandler(l.output, opts))
		return
	}
	l.logger = slog.New(NewPrettyHandler(l.output, opts))
}

// SetOutput updates the logger's output destination, keeping the JSON mode.
// A nil w means stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose lowers the level to debug.
func (l *Logger) SetVerbose(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err. In pretty mode the error chain is unrolled into a
// "Caused by" list followed by any metadata found along the chain. A remedy
// found in the metadata is printed last, on its own line.
func (l *Logger) Error(err error) {
	l.report(err, "")
}

// Fatal logs err like Error. When err carries no remedy, fallback is shown
// in its place.
func (l *Logger) Fatal(err error, fallback string) {
	l.report(err, fallback)
}

func (l *Logger) report(err error, fallback string) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	messages, meta := collectErrorEntries(err)
	remedy := fallback
	if v, ok := meta[RemedyKey]; ok {
		remedy = fmt.Sprint(v)
		delete(meta, RemedyKey)
	}

	var attrs []any
	if remedy != "" {
		attrs = append(attrs, RemedyKey, remedy)
	}

	if l.jsonMode {
		l.logger.Error("operation failed", append([]any{"error", err}, attrs...)...)
		return
	}
	l.logger.Error(formatErrorEntries(messages, meta), attrs...)
}

// collectErrorEntries walks the chain. Errors that can report their own
// message contribute it and the walk continues; the first plain error
// contributes its full text and ends the walk.
func collectErrorEntries(err error) ([]string, map[string]any) {
	var messages []string
	meta := make(map[string]any)

	for current := err; current != nil; {
		if md, ok := current.(metadataer); ok {
			for k, v := range md.Metadata() {
				if _, seen := meta[k]; !seen {
					meta[k] = v
				}
			}
		}

		m, ok := current.(messager)
		if !ok {
			messages = appendDistinct(messages, current.Error())
			break
		}
		messages = appendDistinct(messages, m.Message())
		current = errors.Unwrap(current)
	}

	return messages, meta
}

func appendDistinct(messages []string, msg string) []string {
	if msg == "" || (len(messages) > 0 && messages[len(messages)-1] == msg) {
		return messages
	}
	return append(messages, msg)
}

func formatErrorEntries(messages []string, meta map[string]any) string {
	var lines []string

	for i, msg := range messages {
		parts := strings.Split(msg, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+parts[0])
			for _, line := range parts[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    "+style.Arrow+" "+parts[0])
		for _, line := range parts[1:] {
			lines = append(lines, "      "+line)
		}
	}

	if len(meta) > 0 {
		keys := make([]string, 0, len(meta))
		for k := range meta {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		lines = append(lines, "")
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("  %s: %v", k, meta[k]))
		}
	}

	return strings.Join(lines, "\n")
}
