package logger

import (
	"sync"

	"github.com/philipp01105/levellog/appender"
	"github.com/philipp01105/levellog/core"
)

// Version of the levellog library.
const Version = "0.2.0"

var (
	defaultConfig *Config
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default config with a console appender in slot 0
	defaultConfig = NewConfig()
}

// Default returns the process-wide default config
func Default() *Config {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultConfig
}

// ReplaceDefault installs c as the process-wide default config and
// returns a function restoring the previous one. A nil c is ignored.
// Loggers keep the config they were built with.
func ReplaceDefault(c *Config) (restore func()) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultConfig
	if c != nil {
		defaultConfig = c
	}
	return func() {
		defaultMu.Lock()
		defaultConfig = prev
		defaultMu.Unlock()
	}
}

// Package-level convenience functions using the default config

// Get creates a named logger bound to the default config
func Get(name string, level ...core.Level) (*Logger, error) {
	return Default().Get(name, level...)
}

// MustGet is like Get but panics on error
func MustGet(name string, level ...core.Level) *Logger {
	l, err := Get(name, level...)
	if err != nil {
		panic(err)
	}
	return l
}

// Enable turns logging on globally
func Enable() {
	Default().Enable()
}

// Disable turns logging off globally
func Disable() {
	Default().Disable()
}

// IsEnabled reports whether logging is enabled globally
func IsEnabled() bool {
	return Default().IsEnabled()
}

// SetLevel sets the global minimum level
func SetLevel(level core.Level) {
	Default().SetLevel(level)
}

// GlobalLevel returns the global minimum level
func GlobalLevel() core.Level {
	return Default().Level()
}

// Add appends an appender to the global list
func Add(a appender.Appender) {
	Default().Add(a)
}

// Remove deletes the global appender at index
func Remove(index int) {
	Default().Remove(index)
}

// Appenders returns a copy of the global appender list
func Appenders() []appender.Appender {
	return Default().Appenders()
}

// Configure merges o into the default config
func Configure(o Options) {
	Default().Configure(o)
}

// Merge applies a loosely-typed settings map to the default config
func Merge(settings map[string]interface{}) {
	Default().Merge(settings)
}
