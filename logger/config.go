package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/philipp01105/levellog/appender"
	"github.com/philipp01105/levellog/core"
)

// Config is the shared state every Logger consults on each call: the
// global switch and minimum level, the global appender list copied into
// new loggers, and the defaults new loggers start from.
//
// All methods are safe for concurrent use. Runtime setters never fail;
// invalid input leaves the previous value in place.
type Config struct {
	mu         sync.RWMutex
	enabled    bool
	level      core.Level
	useDefault bool
	timestamps bool
	verbosity  bool
	appenders  *appender.List
	registry   *core.Registry
	clock      core.Clock
	onError    func(error)
}

// Options is a best-effort configuration update for Configure. Zero
// and nil fields leave the current value untouched.
type Options struct {
	// Appenders are added to the global list; invalid entries are skipped
	Appenders []appender.Appender
	// Level replaces the global minimum level when valid
	Level core.Level
	// Enabled turns logging on or off globally
	Enabled *bool
	// UseDefaultAppender decides whether new loggers get the default appender in slot 0
	UseDefaultAppender *bool
	// Timestamps is the timestamp flag new loggers start with
	Timestamps *bool
	// Verbosity is the verbosity flag new loggers start with
	Verbosity *bool
}

// ConfigOption customizes NewConfig.
type ConfigOption func(*Config)

// WithDefaultAppender sets the appender held in slot 0 of the global list
// (default: a ConsoleAppender writing to stdout).
func WithDefaultAppender(a appender.Appender) ConfigOption {
	return func(c *Config) { c.appenders.SetDefault(a) }
}

// WithClock sets the clock used for record timestamps.
func WithClock(clock core.Clock) ConfigOption {
	return func(c *Config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithRegistry sets the level registry used for name lookups.
func WithRegistry(r *core.Registry) ConfigOption {
	return func(c *Config) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithErrorHandler sets the function receiving appender errors from the
// chaining log methods (default: print to stderr).
func WithErrorHandler(fn func(error)) ConfigOption {
	return func(c *Config) {
		if fn != nil {
			c.onError = fn
		}
	}
}

// WithOptions applies a Configure update during construction.
func WithOptions(o Options) ConfigOption {
	return func(c *Config) { c.configure(o) }
}

// NewConfig creates a configuration: logging enabled, TRACE as global
// minimum level, a console appender in slot 0, timestamps and
// verbosity off.
func NewConfig(opts ...ConfigOption) *Config {
	c := &Config{
		enabled:    true,
		level:      core.TraceLevel,
		useDefault: true,
		appenders:  appender.NewList(appender.NewConsoleAppender(appender.ConsoleConfig{})),
		registry:   core.BuiltinRegistry(),
		clock:      core.SystemClock,
		onError:    printError,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// printError is the default error handler
func printError(err error) {
	fmt.Fprintln(os.Stderr, "levellog:", err)
}

// Configure merges o into the configuration and returns c.
func (c *Config) Configure(o Options) *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.configure(o)
	return c
}

func (c *Config) configure(o Options) {
	for _, a := range o.Appenders {
		c.appenders.Add(a)
	}
	c.level = keepLevel(c.level, o.Level, nil)
	c.enabled = keepBool(c.enabled, o.Enabled)
	c.useDefault = keepBool(c.useDefault, o.UseDefaultAppender)
	c.timestamps = keepBool(c.timestamps, o.Timestamps)
	c.verbosity = keepBool(c.verbosity, o.Verbosity)
}

// Merge applies a loosely-typed update, as read from a config file or
// the environment, and returns c. Keys are matched case-insensitively:
//
//	appenders, sinks    Appender, func(*core.Record) error, func(...interface{}) or a slice of them
//	level               Level, *Level or a registered level name
//	enabled             bool
//	useDefaultAppender  bool
//	timestamps          bool
//	verbosity           bool
//
// masterLevel, masterEnable and defaultAppender are accepted as aliases.
// Unknown keys and values of the wrong type are ignored.
func (c *Config) Merge(settings map[string]interface{}) *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, v := range settings {
		switch strings.ToLower(key) {
		case "appenders", "appender", "sinks":
			for _, a := range toAppenders(v) {
				c.appenders.Add(a)
			}
		case "level", "masterlevel", "globalminlevel":
			c.level = keepLevel(c.level, v, c.registry)
		case "enabled", "masterenable", "globalenabled":
			c.enabled = keepBool(c.enabled, v)
		case "usedefaultappender", "defaultappender", "usedefaultsink":
			c.useDefault = keepBool(c.useDefault, v)
		case "timestamps", "timestampsdefault":
			c.timestamps = keepBool(c.timestamps, v)
		case "verbosity", "verbositydefault":
			c.verbosity = keepBool(c.verbosity, v)
		}
	}
	return c
}

// Enable turns logging on globally. Instance settings decide again.
func (c *Config) Enable() *Config {
	c.mu.Lock()
	c.enabled = true
	c.mu.Unlock()
	return c
}

// Disable turns logging off globally, overriding every instance.
func (c *Config) Disable() *Config {
	c.mu.Lock()
	c.enabled = false
	c.mu.Unlock()
	return c
}

// IsEnabled reports whether logging is enabled globally.
func (c *Config) IsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled
}

// SetLevel sets the global minimum level. Invalid levels are ignored.
func (c *Config) SetLevel(level core.Level) *Config {
	c.mu.Lock()
	c.level = keepLevel(c.level, level, nil)
	c.mu.Unlock()
	return c
}

// Level returns the global minimum level.
func (c *Config) Level() core.Level {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.level
}

// Timestamps reports the timestamp flag new loggers start with.
func (c *Config) Timestamps() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timestamps
}

// Verbosity reports the verbosity flag new loggers start with.
func (c *Config) Verbosity() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.verbosity
}

// UsesDefaultAppender reports whether new loggers get the default
// appender in slot 0.
func (c *Config) UsesDefaultAppender() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.useDefault
}

// Add appends a to the global appender list. Loggers created earlier
// are not affected. Invalid appenders are ignored.
func (c *Config) Add(a appender.Appender) *Config {
	c.appenders.Add(a)
	return c
}

// Remove deletes the global appender at index. Index 0 and out-of-range
// indices are ignored.
func (c *Config) Remove(index int) *Config {
	c.appenders.Remove(index)
	return c
}

// Appenders returns a copy of the global appender list.
func (c *Config) Appenders() []appender.Appender {
	return c.appenders.Snapshot()
}

// SetDefaultAppender replaces the appender in slot 0 of the global list.
func (c *Config) SetDefaultAppender(a appender.Appender) *Config {
	c.appenders.SetDefault(a)
	return c
}

// DefaultAppender returns the appender in slot 0 of the global list.
func (c *Config) DefaultAppender() appender.Appender {
	return c.appenders.Default()
}

// Registry returns the level registry used for name lookups.
func (c *Config) Registry() *core.Registry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.registry
}

// DefineLevel creates a level and registers it so it can be used by
// name with Logger.LogNamed and Merge.
func (c *Config) DefineLevel(name string, priority int) (core.Level, error) {
	return c.Registry().Define(name, priority)
}

// Get creates a named logger bound to c. The optional level falls back
// to TRACE when it is not valid. An empty name is rejected with
// core.ErrInvalidArgument.
func (c *Config) Get(name string, level ...core.Level) (*Logger, error) {
	b := NewBuilder(name).WithConfig(c)
	if len(level) > 0 {
		b.WithLevel(level[0])
	}
	return b.Build()
}

// admits reports whether the global gate lets level through.
func (c *Config) admits(level core.Level) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled && level.AtLeast(c.level)
}

func (c *Config) now() time.Time {
	c.mu.RLock()
	clock := c.clock
	c.mu.RUnlock()
	return clock()
}

func (c *Config) handleError(err error) {
	c.mu.RLock()
	fn := c.onError
	c.mu.RUnlock()
	fn(err)
}
