// File: internal/logging/logging.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Leveled diagnostics for the harness. Everything goes to the writer
// as bare lines with no timestamps or prefix: standard output carries
// nothing but samples and summary, so diagnostics stay on stderr.

package logging

import (
	"fmt"
	"io"
	logpkg "log"
	"os"
)

// Level defines severity for logger output.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// Logger provides leveled logging.
type Logger struct {
	level  Level
	logger *logpkg.Logger
}

// New creates a logger with the desired level writing to w.
func New(level Level, w io.Writer) *Logger {
	return &Logger{
		level:  level,
		logger: logpkg.New(w, "", 0),
	}
}

// SetLevel adjusts the current logging level.
func (l *Logger) SetLevel(level Level) {
	if l == nil {
		return
	}
	l.level = level
}

func (l *Logger) logf(target Level, format string, args ...any) {
	if l == nil || target > l.level {
		return
	}
	l.logger.Output(3, fmt.Sprintf(format, args...))
}

// Debugf prints debug messages.
func (l *Logger) Debugf(format string, args ...any) {
	l.logf(LevelDebug, format, args...)
}

// Infof prints info messages.
func (l *Logger) Infof(format string, args ...any) {
	l.logf(LevelInfo, format, args...)
}

// Warnf prints warning messages.
func (l *Logger) Warnf(format string, args ...any) {
	l.logf(LevelWarn, format, args...)
}

// Errorf prints error messages.
func (l *Logger) Errorf(format string, args ...any) {
	l.logf(LevelError, format, args...)
}

var defaultLogger = New(LevelInfo, os.Stderr)

// Default returns the global logger.
func Default() *Logger {
	return defaultLogger
}

// SetDefault replaces the global logger (primarily for tests).
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultLogger = l
}
