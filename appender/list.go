package appender

import (
	"sync"

	"github.com/philipp01105/levellog/core"
	"go.uber.org/multierr"
)

// List is an ordered appender list whose slot 0 is reserved for the
// default appender (or Nop). Slot 0 can be replaced but never removed.
// A List is safe for concurrent use.
type List struct {
	mu        sync.RWMutex
	appenders []Appender
}

// NewList creates a list with def in slot 0 followed by rest. An
// invalid def is replaced with Nop; invalid entries of rest are skipped.
func NewList(def Appender, rest ...Appender) *List {
	if !Valid(def) {
		def = Nop
	}
	l := &List{appenders: make([]Appender, 1, len(rest)+1)}
	l.appenders[0] = def
	for _, a := range rest {
		if Valid(a) {
			l.appenders = append(l.appenders, a)
		}
	}
	return l
}

// Add appends a. It reports false, leaving the list untouched, when a
// is invalid.
func (l *List) Add(a Appender) bool {
	if !Valid(a) {
		return false
	}
	l.mu.Lock()
	l.appenders = append(l.appenders, a)
	l.mu.Unlock()
	return true
}

// Remove deletes the appender at index. Index 0 and out-of-range
// indices are ignored.
func (l *List) Remove(index int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index <= 0 || index >= len(l.appenders) {
		return false
	}
	l.appenders = append(l.appenders[:index], l.appenders[index+1:]...)
	return true
}

// SetDefault replaces slot 0. An invalid a is ignored.
func (l *List) SetDefault(a Appender) bool {
	if !Valid(a) {
		return false
	}
	l.mu.Lock()
	l.appenders[0] = a
	l.mu.Unlock()
	return true
}

// Default returns the appender in slot 0.
func (l *List) Default() Appender {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.appenders[0]
}

// Len returns the number of appenders including slot 0.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.appenders)
}

// Snapshot returns a copy of the current appenders.
func (l *List) Snapshot() []Appender {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Appender, len(l.appenders))
	copy(out, l.appenders)
	return out
}

// Clone returns an independent list with the same contents.
func (l *List) Clone() *List {
	return &List{appenders: l.Snapshot()}
}

// Fanout hands rec to a snapshot of the list in order. Errors returned
// by appenders are combined; every appender is called regardless.
func (l *List) Fanout(rec *core.Record) error {
	return Fanout(l.Snapshot(), rec)
}

// Fanout hands rec to every appender in order and combines the errors
// they return.
func Fanout(appenders []Appender, rec *core.Record) error {
	var err error
	for _, a := range appenders {
		err = multierr.Append(err, a.Append(rec))
	}
	return err
}
