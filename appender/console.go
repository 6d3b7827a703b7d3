package appender

import (
	"io"

	"github.com/philipp01105/levellog/core"
	"github.com/philipp01105/levellog/formatter"
)

// ConsoleAppender is the built-in default appender. It writes records to
// stdout like WriterAppender but never fails: write errors and panics
// raised while formatting or writing are counted and discarded, so an
// unusable output stream cannot break a log call.
type ConsoleAppender struct {
	w *WriterAppender
}

// ConsoleConfig holds configuration for the console appender
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// NewConsoleAppender creates a new console appender
func NewConsoleAppender(cfg ConsoleConfig) *ConsoleAppender {
	return &ConsoleAppender{
		w: NewWriterAppender(WriterConfig{
			Writer:    cfg.Writer,
			Formatter: cfg.Formatter,
		}),
	}
}

// Append writes rec and always returns nil.
func (c *ConsoleAppender) Append(rec *core.Record) error {
	defer func() {
		if r := recover(); r != nil {
			c.w.stats.IncrementFailed()
		}
	}()
	_ = c.w.Append(rec)
	return nil
}

// Stats returns a snapshot of the current statistics
func (c *ConsoleAppender) Stats() Snapshot {
	return c.w.Stats()
}
