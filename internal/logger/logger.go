// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the lateness-tracker server and kiosk.
//
// Logger embeds zerolog.Logger, so the zerolog API (Debug, Info, Err, ...)
// is available directly on *Logger. Request-scoped loggers travel in the
// context and are read back with FromContext or FromRequest.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger on stdout. Every entry carries role, a
// timestamp and the calling function under "func".
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger is NewLogger for the kiosk. Entries go to <role>.log next
// to the executable so they do not draw over the terminal UI. Stdout is used
// when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	return newLogger(openLogFile(role), role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

func openLogFile(role string) io.Writer {
	dir := "."
	if execPath, err := os.Executable(); err == nil {
		dir = filepath.Dir(execPath)
	}

	f, err := os.OpenFile(filepath.Join(dir, role+".log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return os.Stdout
	}
	return f
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// SetLevel sets the minimum level of l from its name ("info", "warn", ...).
// An empty name means debug.
func (l *Logger) SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}
	if lvl < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(lvl)
	}

	l.Logger = l.Level(lvl)
	return nil
}

// GetChildLogger returns a copy of l that can be enriched with fields without
// affecting l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithStudent returns a child logger tagged with student_id.
func (l *Logger) WithStudent(studentID string) *Logger {
	return &Logger{l.With().Str("student_id", studentID).Logger()}
}

// FromRequest returns the logger attached to the request context by the
// trace-ID middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx. Without one, zerolog hands
// back a disabled logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
