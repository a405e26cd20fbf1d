// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package logging provides structured logging for the guess CLI.
//
// Logs never share a stream with the game itself. The game writes prompts
// and feedback to stdout; the logger writes to stderr (or a caller-supplied
// writer) and, optionally, to a JSON file:
//
//	┌──────────────────────────────────────────┐
//	│                  Logger                  │
//	│  ┌──────────────────┐  ┌───────────────┐ │
//	│  │ stderr / Output  │  │   log file    │ │
//	│  │  (text or JSON)  │  │  (JSON only)  │ │
//	│  └──────────────────┘  └───────────────┘ │
//	└──────────────────────────────────────────┘
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{Level: logging.LevelWarn, Service: "guess"})
//	defer logger.Close()
//
//	gameLog := logger.With("game_id", id)
//	gameLog.Debug("discarded input", "line", line)
//
// # Thread Safety
//
// Logger is safe for concurrent use. The underlying slog.Logger is
// thread-safe and Close is guarded by a mutex.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// =============================================================================
// Log Levels
// =============================================================================

// Level represents log severity levels, ordered Debug < Info < Warn < Error.
type Level int

const (
	// LevelDebug is for tracing the guessing loop (discarded lines, each guess).
	LevelDebug Level = iota

	// LevelInfo is for game lifecycle events (game started, game won).
	LevelInfo

	// LevelWarn is for recoverable surprises such as a missing config file.
	LevelWarn

	// LevelError is for failures that end the game (input stream closed).
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR", or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a config or flag value into a Level.
//
// Matching is case-insensitive and accepts the short forms "dbg", "warning"
// and "err". Unrecognised values return an error and LevelInfo.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// =============================================================================
// Configuration
// =============================================================================

// Config configures the Logger.
//
// A zero-value Config writes Info+ messages to stderr in text format.
type Config struct {
	// Level sets the minimum log level. Default: LevelInfo.
	Level Level

	// LogDir enables file logging to "{Service}_{YYYY-MM-DD}.log" inside
	// the directory, always in JSON. The directory is created with 0750.
	// A leading "~" expands to the home directory. Default: disabled.
	LogDir string

	// Service is attached to every record as the "service" attribute.
	Service string

	// JSON switches the stream handler from text to JSON.
	JSON bool

	// Quiet disables the stream handler so records only reach the log file.
	// cmd/guess sets it whenever LogDir is configured. If no file could be
	// opened, the logger still falls back to the stream.
	Quiet bool

	// Output replaces stderr as the stream destination. Default: os.Stderr.
	Output io.Writer
}

// =============================================================================
// Logger
// =============================================================================

// Logger wraps slog.Logger with an optional log file and a level filter.
//
// Always call Close when the logger was configured with LogDir.
type Logger struct {
	slog   *slog.Logger
	config Config

	// file is nil when file logging is disabled or could not be opened.
	file *os.File

	mu sync.Mutex
}

// New creates a Logger from config.
//
// File logging is best-effort: if the directory cannot be created or the
// file cannot be opened, the logger continues with the stream handler only.
func New(config Config) *Logger {
	opts := &slog.HandlerOptions{
		Level: config.Level.toSlogLevel(),
	}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	var handlers []slog.Handler
	if !config.Quiet {
		handlers = append(handlers, streamHandler(out, config.JSON, opts))
	}

	logger := &Logger{config: config}

	if config.LogDir != "" {
		if file := openLogFile(config.LogDir, config.Service); file != nil {
			logger.file = file
			handlers = append(handlers, slog.NewJSONHandler(file, opts))
		}
	}

	var handler slog.Handler
	switch len(handlers) {
	case 0:
		handler = streamHandler(out, config.JSON, opts)
	case 1:
		handler = handlers[0]
	default:
		handler = &multiHandler{handlers: handlers}
	}

	if config.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{
			slog.String("service", config.Service),
		})
	}

	logger.slog = slog.New(handler)
	return logger
}

// Discard returns a logger that drops every record. Used where a caller
// did not supply one.
func Discard() *Logger {
	return New(Config{
		Level:  LevelError,
		Output: io.Discard,
	})
}

// Debug logs at Debug level. args are slog key-value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Info logs at Info level.
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warn logs at Warn level.
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs at Error level. It never exits the process; callers decide.
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// With returns a child logger that adds args to every record.
//
// The child shares the parent's file handle; close only the parent.
//
//	gameLog := logger.With("game_id", result.GameID)
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slog:   l.slog.With(args...),
		config: l.config,
		file:   l.file,
	}
}

// Level returns the configured minimum level.
func (l *Logger) Level() Level {
	return l.config.Level
}

// Close syncs and closes the log file, if any. Safe to call more than once.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}

	var errs []error
	if err := l.file.Sync(); err != nil {
		errs = append(errs, fmt.Errorf("sync log file: %w", err))
	}
	if err := l.file.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close log file: %w", err))
	}
	l.file = nil

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func streamHandler(w io.Writer, json bool, opts *slog.HandlerOptions) slog.Handler {
	if json {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// openLogFile returns nil on any failure.
func openLogFile(dir, service string) *os.File {
	logDir := expandPath(dir)
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return nil
	}
	if service == "" {
		service = "guess"
	}
	filename := fmt.Sprintf("%s_%s.log", service, time.Now().Format("2006-01-02"))
	file, err := os.OpenFile(filepath.Join(logDir, filename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
	if err != nil {
		return nil
	}
	return file
}

// =============================================================================
// Multi-Handler
// =============================================================================

// multiHandler fans records out to several handlers, e.g. text on stderr
// and JSON in the log file.
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// expandPath expands a leading "~" to the user's home directory.
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
