package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Mode string

const (
	ModeJSON Mode = "json"
	ModeText Mode = "text"
)

type Config struct {
	Mode   Mode
	Level  slog.Level
	Output io.Writer // default: os.Stderr
}

// New builds the process logger and installs it as slog.Default().
// stdout is reserved for the run report, so logs always go elsewhere.
func New(cfg Config) *slog.Logger {
	var handler slog.Handler

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: cfg.Level,
	}

	switch cfg.Mode {
	case ModeJSON:
		handler = slog.NewJSONHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// ParseLevel accepts debug, info, warn and error (any case).
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}
