// Package zapappender forwards levellog records to a zap core.
//
// The record's level is mapped onto the nearest zapcore.Level by
// priority; the original level name, logger name and record time are
// kept on the zap entry:
//
//	z, _ := zap.NewProduction()
//	cfg.Add(zapappender.New(z))
package zapappender

import (
	"github.com/philipp01105/levellog/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Appender writes records to a zap logger's core.
type Appender struct {
	core zapcore.Core
}

// New creates an appender writing to z's core. A nil z yields an
// appender backed by zap.NewNop.
func New(z *zap.Logger) *Appender {
	if z == nil {
		z = zap.NewNop()
	}
	return &Appender{core: z.Core()}
}

// NewWithCore creates an appender writing to c.
func NewWithCore(c zapcore.Core) *Appender {
	if c == nil {
		c = zapcore.NewNopCore()
	}
	return &Appender{core: c}
}

// Append writes rec if the core is enabled for its level and returns
// the core's write error.
func (a *Appender) Append(rec *core.Record) error {
	lvl := Level(rec.Level)
	if !a.core.Enabled(lvl) {
		return nil
	}
	ent := zapcore.Entry{
		Level:      lvl,
		Time:       rec.Time,
		LoggerName: rec.Logger,
		Message:    rec.Message(),
	}
	return a.core.Write(ent, []zapcore.Field{
		zap.String("levellog.level", rec.Level.Name()),
	})
}

// Sync flushes the core.
func (a *Appender) Sync() error {
	return a.core.Sync()
}

// Close flushes the core.
func (a *Appender) Close() error {
	return a.Sync()
}

// Level maps a level onto zap by priority. zap has no trace level and
// its fatal and panic levels terminate the caller, so the range is
// DebugLevel to ErrorLevel.
func Level(l core.Level) zapcore.Level {
	switch p := l.Priority(); {
	case p <= core.DebugLevel.Priority():
		return zapcore.DebugLevel
	case p <= core.InfoLevel.Priority():
		return zapcore.InfoLevel
	case p <= core.WarnLevel.Priority():
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
