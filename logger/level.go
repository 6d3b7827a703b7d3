package logger

import "github.com/philipp01105/levellog/core"

// Level Re-export type and built-in levels for convenience
type Level = core.Level

var (
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	TodoLevel  = core.TodoLevel
	FixmeLevel = core.FixmeLevel
	WarnLevel  = core.WarnLevel
	XXXLevel   = core.XXXLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
)

// ParseLevel converts a string to a built-in Level. Unknown names
// yield TraceLevel and false.
func ParseLevel(s string) (Level, bool) {
	return core.ParseLevel(s)
}

// DefineLevel creates a custom level and registers it with the default
// config's registry.
func DefineLevel(name string, priority int) (Level, error) {
	return Default().DefineLevel(name, priority)
}
