package core

import (
	"sort"
	"strings"
	"sync"
)

// Registry maps level names to levels. Lookups are case-insensitive.
// A Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	levels []Level
	byName map[string]Level
}

// NewRegistry creates a registry holding the given levels. Invalid
// levels are skipped.
func NewRegistry(levels ...Level) *Registry {
	r := &Registry{byName: make(map[string]Level, len(levels))}
	for _, l := range levels {
		r.Register(l)
	}
	return r
}

// BuiltinRegistry returns a fresh registry holding the built-in levels.
func BuiltinRegistry() *Registry {
	return NewRegistry(BuiltinLevels()...)
}

// Define creates a level with DefineLevel and registers it.
func (r *Registry) Define(name string, priority int) (Level, error) {
	l, err := DefineLevel(name, priority)
	if err != nil {
		return Level{}, err
	}
	r.Register(l)
	return l, nil
}

// Register adds l, replacing any level registered under the same name.
// It reports false when l is not a valid level.
func (r *Registry) Register(l Level) bool {
	if !l.Valid() {
		return false
	}
	key := strings.ToUpper(l.name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[key]; ok {
		for i := range r.levels {
			if strings.ToUpper(r.levels[i].name) == key {
				r.levels[i] = l
			}
		}
	} else {
		r.levels = append(r.levels, l)
	}
	r.byName[key] = l
	sort.SliceStable(r.levels, func(i, j int) bool {
		return r.levels[i].priority < r.levels[j].priority
	})
	return true
}

// Lookup returns the level registered under name.
func (r *Registry) Lookup(name string) (Level, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.byName[strings.ToUpper(name)]
	return l, ok
}

// Levels returns the registered levels ordered by priority. Levels
// sharing a priority keep their registration order.
func (r *Registry) Levels() []Level {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Level, len(r.levels))
	copy(out, r.levels)
	return out
}

// Lowest returns the registered level with the smallest priority.
func (r *Registry) Lowest() (Level, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.levels) == 0 {
		return Level{}, false
	}
	return r.levels[0], true
}

// ParseLevel converts a string to a built-in Level.
// Unknown names return TraceLevel and false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, true
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "TODO":
		return TodoLevel, true
	case "FIXME":
		return FixmeLevel, true
	case "WARN", "WARNING":
		return WarnLevel, true
	case "XXX":
		return XXXLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "FATAL":
		return FatalLevel, true
	default:
		return TraceLevel, false
	}
}
