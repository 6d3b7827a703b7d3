// Package zerologappender forwards levellog records to a zerolog logger.
package zerologappender

import (
	"github.com/philipp01105/levellog/core"
	"github.com/rs/zerolog"
)

// Field keys added to every event.
const (
	LoggerKey = "logger"
	LevelKey  = "levellog_level"
)

// Appender writes records to a zerolog logger.
type Appender struct {
	logger zerolog.Logger
}

// New creates an appender writing to l.
func New(l zerolog.Logger) *Appender {
	return &Appender{logger: l}
}

// Append sends rec as one zerolog event carrying the record time. A
// FATAL record is sent at zerolog.FatalLevel through WithLevel, which
// does not terminate the process.
func (a *Appender) Append(rec *core.Record) error {
	a.logger.WithLevel(Level(rec.Level)).
		Time(zerolog.TimestampFieldName, rec.Time).
		Str(LoggerKey, rec.Logger).
		Str(LevelKey, rec.Level.Name()).
		Msg(rec.Message())
	return nil
}

// Level maps a level onto zerolog by priority.
func Level(l core.Level) zerolog.Level {
	switch p := l.Priority(); {
	case p <= core.TraceLevel.Priority():
		return zerolog.TraceLevel
	case p <= core.DebugLevel.Priority():
		return zerolog.DebugLevel
	case p <= core.InfoLevel.Priority():
		return zerolog.InfoLevel
	case p <= core.WarnLevel.Priority():
		return zerolog.WarnLevel
	case p <= core.ErrorLevel.Priority():
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}
