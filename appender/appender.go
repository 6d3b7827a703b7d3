package appender

import (
	"reflect"

	"github.com/philipp01105/levellog/core"
)

// Appender defines the interface for record destinations
type Appender interface {
	// Append processes a formatted record
	Append(rec *core.Record) error
}

// Closer is an optional interface for appenders holding resources
type Closer interface {
	Close() error
}

// Func adapts an ordinary function to the Appender interface
type Func func(rec *core.Record) error

// Append calls f(rec)
func (f Func) Append(rec *core.Record) error {
	return f(rec)
}

// Values adapts a variadic function receiving the record values
// (prefix first, then the call arguments).
func Values(fn func(values ...interface{})) Appender {
	if fn == nil {
		return nil
	}
	return Func(func(rec *core.Record) error {
		fn(rec.Values...)
		return nil
	})
}

// Nop is an appender that discards every record. It occupies slot 0 of
// a list when the default appender is turned off.
var Nop Appender = nopAppender{}

type nopAppender struct{}

func (nopAppender) Append(*core.Record) error { return nil }

// IsNop reports whether a is the Nop appender.
func IsNop(a Appender) bool {
	_, ok := a.(nopAppender)
	return ok
}

// Valid reports whether a can be stored in a list: non-nil, and not a
// typed nil pointer, func, map, slice, channel or interface.
func Valid(a Appender) bool {
	if a == nil {
		return false
	}
	switch v := reflect.ValueOf(a); v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return !v.IsNil()
	}
	return true
}
