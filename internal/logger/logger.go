// Package logger is a package-level file logger. The TUI owns the terminal,
// so nothing here ever writes to stdout or stderr.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu       sync.Mutex
	levelVar = new(slog.LevelVar)
	slogger  *slog.Logger
	logFile  *os.File
	logPath  string
)

// Init opens path for appending and routes all log calls to it. The parent
// directory is created when missing. Calling Init again switches files.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", path, err)
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logPath = path
	slogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	slogger.Info("logger initialized", "path", path)
	return nil
}

// InitWriter routes log calls to w. Used by tests.
func InitWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	slogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
}

// Path returns the file passed to Init, or "" when logging to a writer or
// not at all.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// SetDebug toggles debug-level output.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

func logAt(level slog.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	// Logging before Init is silently dropped.
	if slogger == nil || !slogger.Enabled(context.Background(), level) {
		return
	}
	slogger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug logs at debug level.
func Debug(format string, args ...any) { logAt(slog.LevelDebug, format, args...) }

// Info logs at info level.
func Info(format string, args ...any) { logAt(slog.LevelInfo, format, args...) }

// Warn logs at warn level.
func Warn(format string, args ...any) { logAt(slog.LevelWarn, format, args...) }

// Error logs at error level.
func Error(format string, args ...any) { logAt(slog.LevelError, format, args...) }

// Close releases the log file and disables logging.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogger = nil
	logPath = ""
	levelVar.Set(slog.LevelInfo)
}
