package logger

import "log/slog"

// NewNope returns a logger that drops everything. Packages use it until a
// real logger is injected.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
