// Package logging holds the package-level structured logger shared by
// the memory providers, the list and the snapshot store.
package logging

import "log/slog"

// logger is the logger installed with SetLogger, nil when unset.
var logger *slog.Logger

// Logger returns the logger installed with SetLogger, or slog.Default()
// tagged with component=arenalist.
func Logger() *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default().With("component", "arenalist")
}

// SetLogger replaces the logger. A nil l restores the default.
func SetLogger(l *slog.Logger) {
	logger = l
}
