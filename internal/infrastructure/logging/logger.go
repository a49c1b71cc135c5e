// Package logging builds the slog loggers used by the command line tools.
//
// The default handler prints bracketed console lines:
// [LEVEL] [system] [HH:MM:SS] message key=value
package logging

import (
	"log/slog"
	"os"

	"github.com/scj643/pricing-csv/internal/infrastructure/config"
)

// NewLogger creates a structured logger based on config
func NewLogger(cfg config.LoggingConfig) *slog.Logger {
	// Parse log level
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(NewConsoleHandler(os.Stdout, opts))
}

// NewLoggerWithSystem creates a logger with a system prefix (e.g., "feeds", "matcher", "reconcile")
// This is useful for creating scoped loggers that can be injected into subsystems
func NewLoggerWithSystem(cfg config.LoggingConfig, system string) *slog.Logger {
	logger := NewLogger(cfg)
	return logger.With("system", system)
}
