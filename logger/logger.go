package logger

import (
	"sync"

	"github.com/philipp01105/levellog/appender"
	"github.com/philipp01105/levellog/core"
	"github.com/philipp01105/levellog/formatter"
)

// Logger is a named logging instance. It keeps its own minimum level,
// enabled/verbose/timestamp switches and a private copy of the global
// appender list taken when it was built.
type Logger struct {
	cfg       *Config
	name      string
	appenders *appender.List

	mu      sync.RWMutex
	level   core.Level
	enabled bool
	verbose bool
	stamps  bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	cfg     *Config
	name    string
	level   core.Level
	verbose *bool
	stamps  *bool
	extra   []appender.Appender
}

// NewBuilder creates a new logger builder
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// WithConfig binds the logger to c (default: the process-wide Default())
func (b *Builder) WithConfig(c *Config) *Builder {
	b.cfg = c
	return b
}

// WithLevel sets the minimum level; invalid levels fall back to TRACE
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithVerbosity overrides the verbosity flag inherited from the config
func (b *Builder) WithVerbosity(enabled bool) *Builder {
	b.verbose = &enabled
	return b
}

// WithStamps overrides the timestamp flag inherited from the config
func (b *Builder) WithStamps(enabled bool) *Builder {
	b.stamps = &enabled
	return b
}

// WithAppenders adds appenders after the copied global ones
func (b *Builder) WithAppenders(appenders ...appender.Appender) *Builder {
	b.extra = append(b.extra, appenders...)
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() (*Logger, error) {
	if b.name == "" {
		return nil, core.InvalidArgument("Get", "name", b.name)
	}
	cfg := b.cfg
	if cfg == nil {
		cfg = Default()
	}

	cfg.mu.RLock()
	verbose := cfg.verbosity
	stamps := cfg.timestamps
	useDefault := cfg.useDefault
	appenders := cfg.appenders.Clone()
	cfg.mu.RUnlock()

	if !useDefault {
		appenders.SetDefault(appender.Nop)
	}
	for _, a := range b.extra {
		appenders.Add(a)
	}

	return &Logger{
		cfg:       cfg,
		name:      b.name,
		appenders: appenders,
		level:     keepLevel(core.TraceLevel, b.level, nil),
		enabled:   true,
		verbose:   keepBool(verbose, b.verbose),
		stamps:    keepBool(stamps, b.stamps),
	}, nil
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Config returns the configuration the logger is bound to
func (l *Logger) Config() *Config {
	return l.cfg
}

// Level returns the minimum level
func (l *Logger) Level() core.Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetLevel sets the minimum level. Invalid levels are ignored.
func (l *Logger) SetLevel(level core.Level) *Logger {
	l.mu.Lock()
	l.level = keepLevel(l.level, level, nil)
	l.mu.Unlock()
	return l
}

// Enable turns the logger on
func (l *Logger) Enable() *Logger {
	l.mu.Lock()
	l.enabled = true
	l.mu.Unlock()
	return l
}

// Disable turns the logger off
func (l *Logger) Disable() *Logger {
	l.mu.Lock()
	l.enabled = false
	l.mu.Unlock()
	return l
}

// IsEnabled reports whether the logger is on
func (l *Logger) IsEnabled() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.enabled
}

// EnableStamps adds timestamps to the record prefix
func (l *Logger) EnableStamps() *Logger {
	l.mu.Lock()
	l.stamps = true
	l.mu.Unlock()
	return l
}

// DisableStamps removes timestamps from the record prefix
func (l *Logger) DisableStamps() *Logger {
	l.mu.Lock()
	l.stamps = false
	l.mu.Unlock()
	return l
}

// IsStamps reports whether timestamps are enabled
func (l *Logger) IsStamps() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.stamps
}

// EnableVerbosity lets the V-methods through
func (l *Logger) EnableVerbosity() *Logger {
	l.mu.Lock()
	l.verbose = true
	l.mu.Unlock()
	return l
}

// DisableVerbosity silences the V-methods
func (l *Logger) DisableVerbosity() *Logger {
	l.mu.Lock()
	l.verbose = false
	l.mu.Unlock()
	return l
}

// IsVerbose reports whether verbosity is enabled
func (l *Logger) IsVerbose() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.verbose
}

// Appenders returns a copy of the logger's appender list
func (l *Logger) Appenders() []appender.Appender {
	return l.appenders.Snapshot()
}

// Add appends an appender to this logger only. Invalid appenders are ignored.
func (l *Logger) Add(a appender.Appender) *Logger {
	l.appenders.Add(a)
	return l
}

// Remove deletes the appender at index. Index 0 and out-of-range
// indices are ignored.
func (l *Logger) Remove(index int) *Logger {
	l.appenders.Remove(index)
	return l
}

// EnableDefaultAppender puts the config's default appender in slot 0
func (l *Logger) EnableDefaultAppender() *Logger {
	l.appenders.SetDefault(l.cfg.DefaultAppender())
	return l
}

// DisableDefaultAppender puts appender.Nop in slot 0
func (l *Logger) DisableDefaultAppender() *Logger {
	l.appenders.SetDefault(appender.Nop)
	return l
}

// IsEnabledFor reports whether level is at or above the logger's
// minimum level. Global settings are not consulted.
func (l *Logger) IsEnabledFor(level core.Level) bool {
	return level.Valid() && level.AtLeast(l.Level())
}

// Log logs args at level. Appender errors go to the config's error
// handler; Log always returns l.
func (l *Logger) Log(level core.Level, args ...interface{}) *Logger {
	return l.report(l.dispatch(level, false, args))
}

// VLog is Log gated additionally on the logger's verbosity.
func (l *Logger) VLog(level core.Level, args ...interface{}) *Logger {
	return l.report(l.dispatch(level, true, args))
}

// LogNamed logs at the level registered under name in the config's
// registry. Unknown names log nothing.
func (l *Logger) LogNamed(name string, args ...interface{}) *Logger {
	level, ok := l.cfg.Registry().Lookup(name)
	if !ok {
		return l
	}
	return l.Log(level, args...)
}

// Emit is Log returning the combined errors of the appenders instead of
// handing them to the error handler.
func (l *Logger) Emit(level core.Level, args ...interface{}) error {
	return l.dispatch(level, false, args)
}

// VEmit is Emit gated additionally on the logger's verbosity.
func (l *Logger) VEmit(level core.Level, args ...interface{}) error {
	return l.dispatch(level, true, args)
}

func (l *Logger) report(err error) *Logger {
	if err != nil {
		l.cfg.handleError(err)
	}
	return l
}

// dispatch gates, formats and fans out one log call.
func (l *Logger) dispatch(level core.Level, verbose bool, args []interface{}) error {
	// Level check - exit early BEFORE any formatting
	if !level.Valid() {
		return nil
	}

	l.mu.RLock()
	pass := l.enabled && level.AtLeast(l.level) && (!verbose || l.verbose)
	stamps := l.stamps
	l.mu.RUnlock()

	if !pass || !l.cfg.admits(level) {
		return nil
	}

	t := l.cfg.now()
	prefix := formatter.Prefix(level, l.name, stamps, t)
	rec := core.NewRecord(t, level, l.name, prefix, formatter.Substitute(args))

	return l.appenders.Fanout(rec)
}
