package appender

import (
	"github.com/philipp01105/levellog/core"
	"go.uber.org/multierr"
)

// TeeAppender sends records to multiple appenders
type TeeAppender struct {
	appenders []Appender
}

// Tee creates an appender fanning out to every valid appender given,
// in order.
func Tee(appenders ...Appender) *TeeAppender {
	t := &TeeAppender{appenders: make([]Appender, 0, len(appenders))}
	for _, a := range appenders {
		if Valid(a) {
			t.appenders = append(t.appenders, a)
		}
	}
	return t
}

// Append processes a record by sending it to all appenders. Every
// appender is called; their errors are combined.
func (t *TeeAppender) Append(rec *core.Record) error {
	return Fanout(t.appenders, rec)
}

// Close closes every appender implementing Closer
func (t *TeeAppender) Close() error {
	var err error
	for _, a := range t.appenders {
		if c, ok := a.(Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}
