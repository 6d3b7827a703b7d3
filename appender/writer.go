package appender

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/levellog/core"
	"github.com/philipp01105/levellog/formatter"
)

// WriterAppender writes formatted records to an io.Writer. Write and
// format errors are returned to the caller.
type WriterAppender struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
	stats           *Stats
}

// WriterConfig holds configuration for a writer appender
type WriterConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// NewWriterAppender creates a new writer appender
func NewWriterAppender(cfg WriterConfig) *WriterAppender {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	a := &WriterAppender{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     NewStats(),
	}

	// Cache WriterFormatter for zero-alloc path
	a.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return a
}

// Append formats and writes a record
func (a *WriterAppender) Append(rec *core.Record) error {
	err := a.write(rec)
	if err != nil {
		a.stats.IncrementFailed()
		return err
	}
	a.stats.IncrementProcessed()
	return nil
}

func (a *WriterAppender) write(rec *core.Record) error {
	if a.writerFormatter != nil {
		a.mu.Lock()
		defer a.mu.Unlock()
		return a.writerFormatter.FormatTo(rec, a.writer)
	}

	data, err := a.formatter.Format(rec)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	_, err = a.writer.Write(data)
	return err
}

// Stats returns a snapshot of the current statistics
func (a *WriterAppender) Stats() Snapshot {
	return a.stats.GetSnapshot()
}
