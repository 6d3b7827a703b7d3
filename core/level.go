package core

import "strconv"

// Level represents a named severity with a numeric priority.
//
// Levels are compared by priority only. Two levels may share a
// priority (INFO and TODO, for example) and still be distinct values.
// The zero Level is not a valid level.
type Level struct {
	name     string
	priority int
}

// Built-in levels in ascending priority.
var (
	// TraceLevel for the finest grained tracing output (default minimum)
	TraceLevel = Level{name: "TRACE", priority: 0}
	// DebugLevel for detailed debugging information
	DebugLevel = Level{name: "DEBUG", priority: 1}
	// InfoLevel for general informational messages
	InfoLevel = Level{name: "INFO", priority: 2}
	// TodoLevel marks unfinished code paths, same tier as InfoLevel
	TodoLevel = Level{name: "TODO", priority: 2}
	// FixmeLevel marks known defects, same tier as WarnLevel
	FixmeLevel = Level{name: "FIXME", priority: 3}
	// WarnLevel for warning messages
	WarnLevel = Level{name: "WARN", priority: 3}
	// XXXLevel marks dangerous code paths, same tier as ErrorLevel
	XXXLevel = Level{name: "XXX", priority: 4}
	// ErrorLevel for error messages
	ErrorLevel = Level{name: "ERROR", priority: 4}
	// FatalLevel for fatal messages (does not exit the process)
	FatalLevel = Level{name: "FATAL", priority: 5}
)

// BuiltinLevels returns the built-in levels in ascending priority.
func BuiltinLevels() []Level {
	return []Level{
		TraceLevel,
		DebugLevel,
		InfoLevel,
		TodoLevel,
		FixmeLevel,
		WarnLevel,
		XXXLevel,
		ErrorLevel,
		FatalLevel,
	}
}

// DefineLevel creates a new level. The name must be a non-empty run of
// ASCII letters.
func DefineLevel(name string, priority int) (Level, error) {
	if !isAlpha(name) {
		return Level{}, InvalidArgument("DefineLevel", "name", name)
	}
	return Level{name: name, priority: priority}, nil
}

// MustDefineLevel is like DefineLevel but panics on error.
func MustDefineLevel(name string, priority int) Level {
	l, err := DefineLevel(name, priority)
	if err != nil {
		panic(err)
	}
	return l
}

// IsLevel reports whether v is a valid Level or a non-nil *Level
// pointing at one.
func IsLevel(v interface{}) bool {
	switch l := v.(type) {
	case Level:
		return l.Valid()
	case *Level:
		return l != nil && l.Valid()
	default:
		return false
	}
}

// Name returns the level name.
func (l Level) Name() string { return l.name }

// Priority returns the ordering key.
func (l Level) Priority() int { return l.priority }

// Valid reports whether l was created through DefineLevel or is a built-in.
func (l Level) Valid() bool { return l.name != "" }

// AtLeast reports whether l is at or above floor.
func (l Level) AtLeast(floor Level) bool { return l.priority >= floor.priority }

// Equal reports whether both levels share name and priority.
func (l Level) Equal(o Level) bool { return l == o }

// String returns the level name, or its priority for an invalid level.
func (l Level) String() string {
	if l.name == "" {
		return "LEVEL(" + strconv.Itoa(l.priority) + ")"
	}
	return l.name
}

// Compare orders a and b by priority: -1, 0 or +1.
func Compare(a, b Level) int {
	switch {
	case a.priority < b.priority:
		return -1
	case a.priority > b.priority:
		return 1
	default:
		return 0
	}
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
