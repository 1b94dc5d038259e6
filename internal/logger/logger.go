// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used by the hotel
// booking server and its command-line client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Request handlers obtain the request-scoped logger (which carries the
// trace id) via FromRequest or FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TraceIDField is the log field that carries the per-request trace id.
const TraceIDField = "trace_id"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger for the given role label (e.g. "server",
// "client") that writes JSON entries to w.
//
// Every entry carries a "role" field, a "time" timestamp and a "func" caller
// field holding the fully-qualified function name instead of file:line.
func New(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger constructs the server logger writing to os.Stdout.
func NewLogger(role string) *Logger {
	return New(role, os.Stdout)
}

// NewFileLogger constructs a logger that appends to the file at path so
// command output on stdout stays clean. If the file cannot be opened the
// logger falls back to os.Stderr.
func NewFileLogger(role, path string) *Logger {
	var w io.Writer = os.Stderr
	if path != "" {
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			w = f
		}
	}

	return New(role, w)
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithTraceID returns a child logger whose entries carry traceID.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str(TraceIDField, traceID).Logger()}
}

// FromRequest returns the logger attached to the request's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
