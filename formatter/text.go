package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/levellog/core"
)

// TextFormatter renders a record as one line: every value in order,
// separated like console output.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.Separator == "" {
		cfg.Separator = " "
	}
	if cfg.LineEnding == "" {
		cfg.LineEnding = "\n"
	}
	return &TextFormatter{Config: cfg}
}

// Format formats a record as text
func (f *TextFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer writes the formatted record into the given buffer
func (f *TextFormatter) formatToBuffer(rec *core.Record, buf *bytes.Buffer) {
	for i, v := range rec.Values {
		if i > 0 {
			buf.WriteString(f.Separator)
		}
		buf.Write(core.AppendValue(buf.AvailableBuffer(), v))
	}
	buf.WriteString(f.LineEnding)
}
