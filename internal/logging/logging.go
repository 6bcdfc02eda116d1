// Package logging provides the file-backed logger tailpad uses for soft
// failures and debug traces. A TUI owns the terminal, so nothing is ever
// written to stdout or stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes leveled, timestamped lines to a single log file.
//
// A nil *Logger is valid and discards everything, so call sites never need
// to guard against logging being disabled.
type Logger struct {
	mu    sync.Mutex
	file  *os.File
	debug bool
}

// New opens (or creates) the log file at path, appending to existing
// content. debug enables Debug output. An empty path yields a nil logger.
func New(path string, debug bool) (*Logger, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return &Logger{file: f, debug: debug}, nil
}

// Debug logs debug output; dropped unless the logger was created with
// debug enabled.
func (l *Logger) Debug(format string, args ...any) {
	if l == nil || !l.debug {
		return
	}
	l.write("DEBUG", format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.write("INFO", format, args...)
}

// Warn logs a warning-level message. Its method value satisfies
// tailkeep.WarnFunc.
func (l *Logger) Warn(format string, args ...any) {
	l.write("WARN", format, args...)
}

// Error logs an error-level message.
func (l *Logger) Error(format string, args ...any) {
	l.write("ERROR", format, args...)
}

func (l *Logger) write(level, format string, args ...any) {
	if l == nil || l.file == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(l.file, "%s [%s] %s\n", ts, level, fmt.Sprintf(format, args...))
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
