// Package formatter shapes a log call into a record and a record into
// bytes.
//
// Prefix and Substitute are used by the dispatch engine: Prefix builds
// the "[LEVEL] (name)" head of every record, optionally with an
// HH:MM:SS:mmm timestamp between the two parts, and Substitute
// consumes trailing arguments into "{}" tokens of a leading template
// string.
//
// Writer-backed appenders serialize records with a Formatter. The
// built-in TextFormatter implements both Formatter and WriterFormatter;
// appenders check for WriterFormatter at construction time and prefer
// it, eliminating the intermediate byte slice allocation on the write
// path. It uses a pooled bytes.Buffer internally and relies on
// core.AppendValue to avoid per-call allocations for scalar values.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
