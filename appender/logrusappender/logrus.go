// Package logrusappender forwards levellog records to a logrus logger.
package logrusappender

import (
	"github.com/philipp01105/levellog/core"
	"github.com/sirupsen/logrus"
)

// Field keys added to every entry.
const (
	LoggerKey = "logger"
	LevelKey  = "levellog_level"
)

// Appender writes records to a logrus logger.
type Appender struct {
	logger *logrus.Logger
}

// New creates an appender writing to l. A nil l uses logrus.StandardLogger().
func New(l *logrus.Logger) *Appender {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Appender{logger: l}
}

// Append logs rec through logrus with the record time and the logger
// and level names as fields. Output errors are reported by logrus
// itself, so Append always returns nil.
func (a *Appender) Append(rec *core.Record) error {
	lvl := Level(rec.Level)
	if !a.logger.IsLevelEnabled(lvl) {
		return nil
	}
	logrus.NewEntry(a.logger).
		WithTime(rec.Time).
		WithFields(logrus.Fields{
			LoggerKey: rec.Logger,
			LevelKey:  rec.Level.Name(),
		}).
		Log(lvl, rec.Message())
	return nil
}

// Level maps a level onto logrus by priority. logrus' fatal and panic
// levels terminate the caller, so the range is TraceLevel to ErrorLevel.
func Level(l core.Level) logrus.Level {
	switch p := l.Priority(); {
	case p <= core.TraceLevel.Priority():
		return logrus.TraceLevel
	case p <= core.DebugLevel.Priority():
		return logrus.DebugLevel
	case p <= core.InfoLevel.Priority():
		return logrus.InfoLevel
	case p <= core.WarnLevel.Priority():
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
