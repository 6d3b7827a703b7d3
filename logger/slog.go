package logger

import (
	"context"
	"log/slog"

	"github.com/philipp01105/levellog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Logger, so code written against log/slog goes through the logger's
// gates and appenders. Attributes are rendered as key=value arguments
// after the message.
type SlogHandler struct {
	logger *Logger
	attrs  []interface{}
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping l.
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled reports whether the logger and its config admit the level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	lvl := slogLevelToCore(level)
	return s.logger.IsEnabled() && s.logger.IsEnabledFor(lvl) && s.logger.cfg.admits(lvl)
}

// Handle converts record into a log call on the wrapped logger.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	args := make([]interface{}, 0, 1+len(s.attrs)+record.NumAttrs())
	// Attributes follow the message as plain arguments, so "{}" tokens
	// in the message are filled from them in order.
	args = append(args, record.Message)
	args = append(args, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		args = appendAttr(args, s.group, a)
		return true
	})
	return s.logger.Emit(slogLevelToCore(record.Level), args...)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]interface{}, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{logger: s.logger, attrs: newAttrs, group: s.group}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{logger: s.logger, attrs: s.attrs, group: newGroup}
}

// slogLevelToCore converts a slog.Level to a built-in level. Levels at
// slog.LevelError+4 and above map to FATAL.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+4:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr renders a as "key=value", flattening groups into dotted keys.
func appendAttr(dst []interface{}, group string, a slog.Attr) []interface{} {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, key, ga)
		}
		return dst
	}
	return append(dst, key+"="+a.Value.String())
}
