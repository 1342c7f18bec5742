package config

import (
	"context"
	"fmt"
	"log/slog"
)

// EngineLogger adapts a slog.Logger to the printf-style logger the
// calculation engine expects
type EngineLogger struct {
	L *slog.Logger
}

// NewEngineLogger wraps l, falling back to slog.Default when nil
func NewEngineLogger(l *slog.Logger) EngineLogger {
	if l == nil {
		l = slog.Default()
	}
	return EngineLogger{L: l}
}

func (e EngineLogger) log(level slog.Level, format string, args ...any) {
	if !e.L.Enabled(context.Background(), level) {
		return
	}
	e.L.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

func (e EngineLogger) Debugf(format string, args ...any) { e.log(slog.LevelDebug, format, args...) }
func (e EngineLogger) Infof(format string, args ...any)  { e.log(slog.LevelInfo, format, args...) }
func (e EngineLogger) Warnf(format string, args ...any)  { e.log(slog.LevelWarn, format, args...) }
func (e EngineLogger) Errorf(format string, args ...any) { e.log(slog.LevelError, format, args...) }
