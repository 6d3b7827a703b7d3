// Package slogappender forwards levellog records to a log/slog handler.
package slogappender

import (
	"context"
	"log/slog"

	"github.com/philipp01105/levellog/core"
)

// Attribute keys added to every slog record.
const (
	LoggerKey = "logger"
	LevelKey  = "levellog_level"
)

// Extra slog levels for the ends of the levellog range.
const (
	LevelTrace = slog.LevelDebug - 4
	LevelFatal = slog.LevelError + 4
)

// Appender writes records to a slog.Handler.
type Appender struct {
	handler slog.Handler
}

// New creates an appender writing to h. A nil h uses the handler of
// slog.Default().
func New(h slog.Handler) *Appender {
	if h == nil {
		h = slog.Default().Handler()
	}
	return &Appender{handler: h}
}

// Append converts rec into a slog.Record and returns the handler's error.
func (a *Appender) Append(rec *core.Record) error {
	ctx := context.Background()
	lvl := Level(rec.Level)
	if !a.handler.Enabled(ctx, lvl) {
		return nil
	}
	r := slog.NewRecord(rec.Time, lvl, rec.Message(), 0)
	r.AddAttrs(
		slog.String(LoggerKey, rec.Logger),
		slog.String(LevelKey, rec.Level.Name()),
	)
	return a.handler.Handle(ctx, r)
}

// Level maps a level onto slog by priority.
func Level(l core.Level) slog.Level {
	switch p := l.Priority(); {
	case p <= core.TraceLevel.Priority():
		return LevelTrace
	case p <= core.DebugLevel.Priority():
		return slog.LevelDebug
	case p <= core.InfoLevel.Priority():
		return slog.LevelInfo
	case p <= core.WarnLevel.Priority():
		return slog.LevelWarn
	case p <= core.ErrorLevel.Priority():
		return slog.LevelError
	default:
		return LevelFatal
	}
}
