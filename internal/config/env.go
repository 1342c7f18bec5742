package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	EnvLogLevel       = "LOG_LEVEL"
	EnvRegulatoryPath = "CLTCALC_REGULATORY"
)

// Settings holds values read from the environment
type Settings struct {
	LogLevel       slog.Level
	RegulatoryPath string
}

// Load reads the environment
func Load() *Settings {
	return &Settings{
		LogLevel:       ParseLevel(getenv(EnvLogLevel, "info")),
		RegulatoryPath: getenv(EnvRegulatoryPath, ""),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// ParseLevel maps a level name to a slog level, defaulting to info
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

// InitLogger builds a JSON slog logger. Reports go to stdout, so logs
// are written to w (normally stderr).
func InitLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	l := slog.New(h)
	slog.SetDefault(l)
	return l
}
