package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config holds logger configuration loaded from the environment.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Sentry SentryConfig
}

// New creates a JSON-formatted logger writing to stdout with optional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	return slog.New(WithExtractors(newHandler(os.Stdout, FormatJSON, slog.LevelInfo), extractors...))
}

// NewFromConfig creates a logger from cfg writing to w.
// Sentry fan-out is enabled when cfg.Sentry.DSN is set.
func NewFromConfig(cfg Config, w io.Writer, extractors ...ContextExtractor) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	level := ParseLevel(cfg.Level)
	base := newHandler(w, cfg.Format, level)

	if cfg.Sentry.DSN == "" {
		return slog.New(WithExtractors(base, extractors...))
	}
	return slog.New(WithExtractors(withSentry(base, cfg.Sentry), extractors...))
}

// ParseLevel maps a level name to slog.Level. Unknown names resolve to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, FormatText) {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
