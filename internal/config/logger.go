package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// ParseLevel maps LOG_LEVEL values to logrus levels. "silent" discards
// everything below panic.
func ParseLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logrus.PanicLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	case "warn":
		return logrus.WarnLevel, nil
	case "", "info":
		return logrus.InfoLevel, nil
	case "debug":
		return logrus.DebugLevel, nil
	default:
		return logrus.InfoLevel, fmt.Errorf("invalid LOG_LEVEL=%q (expected silent|error|warn|info|debug)", level)
	}
}

// FileLogger opens (appending) the log file at path and returns a logger
// writing JSON lines to it. The terminal belongs to the TUI, so nothing is
// written to stdout or stderr. The caller closes the returned file.
func FileLogger(level logrus.Level, path string) (*os.File, *logrus.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := NewLogger(level, f)
	return f, logger, nil
}

// NewLogger returns a JSON logger writing to w.
func NewLogger(level logrus.Level, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}

// DiscardLogger returns a logger that drops everything. Used by tests and by
// headless commands run without a log file.
func DiscardLogger() *logrus.Logger {
	return NewLogger(logrus.PanicLevel, io.Discard)
}
