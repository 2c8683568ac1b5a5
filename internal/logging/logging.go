// Package logging provides the reporting sink the engine writes to.
// Components receive a Logger explicitly; nothing here is process-global.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger is the sink for retention and archival reports. Arguments after
// msg are slog-style key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// Format names accepted by Options.Format.
const (
	FormatLine = "line"
	FormatText = "text"
	FormatJSON = "json"
)

// Options selects level and output format.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // line, text, json
}

// SlogLogger is the Logger backed by log/slog.
type SlogLogger struct {
	l *slog.Logger
}

// New builds a Logger writing to w.
func New(w io.Writer, opts Options) (*SlogLogger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	hopts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", FormatLine:
		h = NewLineHandler(w, hopts)
	case FormatText:
		h = slog.NewTextHandler(w, hopts)
	case FormatJSON:
		h = slog.NewJSONHandler(w, hopts)
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	return &SlogLogger{l: slog.New(h)}, nil
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return &SlogLogger{l: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// ParseLevel maps a level name to a slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

func (s *SlogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *SlogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *SlogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *SlogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}

// Slog exposes the underlying *slog.Logger.
func (s *SlogLogger) Slog() *slog.Logger {
	return s.l
}
