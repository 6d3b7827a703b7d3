package logger

import (
	"github.com/philipp01105/levellog/appender"
	"github.com/philipp01105/levellog/core"
)

// Runtime setters never fail. Every one of them funnels its input
// through the helpers below, which return the previous value whenever
// the new one is unusable.

// Bool returns a pointer to b, for use in Options.
func Bool(b bool) *bool {
	return &b
}

// keepBool returns next if it is a bool or a non-nil *bool, prev otherwise.
func keepBool(prev bool, next interface{}) bool {
	switch v := next.(type) {
	case bool:
		return v
	case *bool:
		if v != nil {
			return *v
		}
	}
	return prev
}

// keepLevel returns next if it resolves to a valid level, prev otherwise.
// Strings are resolved by name through reg when reg is non-nil.
func keepLevel(prev core.Level, next interface{}, reg *core.Registry) core.Level {
	switch v := next.(type) {
	case core.Level:
		if v.Valid() {
			return v
		}
	case *core.Level:
		if v != nil && v.Valid() {
			return *v
		}
	case string:
		if reg != nil {
			if l, ok := reg.Lookup(v); ok {
				return l
			}
		}
	}
	return prev
}

// toAppenders extracts every valid appender from v, which may be a
// single appender, an appender function or a slice of either.
func toAppenders(v interface{}) []appender.Appender {
	switch x := v.(type) {
	case nil:
		return nil
	case []appender.Appender:
		out := make([]appender.Appender, 0, len(x))
		for _, a := range x {
			out = append(out, toAppenders(a)...)
		}
		return out
	case []interface{}:
		out := make([]appender.Appender, 0, len(x))
		for _, a := range x {
			out = append(out, toAppenders(a)...)
		}
		return out
	}
	if a := toAppender(v); a != nil {
		return []appender.Appender{a}
	}
	return nil
}

// toAppender converts v to an appender, or returns nil.
func toAppender(v interface{}) appender.Appender {
	switch x := v.(type) {
	case appender.Appender:
		if appender.Valid(x) {
			return x
		}
	case func(*core.Record) error:
		if x != nil {
			return appender.Func(x)
		}
	case func(...interface{}):
		if x != nil {
			return appender.Values(x)
		}
	}
	return nil
}
