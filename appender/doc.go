// Package appender provides the Appender interface, the ordered
// appender List used by configurations and loggers, and the built-in
// appenders.
//
// An appender receives a fully formatted core.Record: Values[0] is the
// "[LEVEL] (name)" prefix and the remaining values are the call
// arguments left after "{}" substitution. Appenders are invoked
// synchronously on the logging goroutine, in list order.
//
// Slot 0 of every List is reserved for the default appender, or Nop
// when the default appender is turned off. It can be replaced with
// SetDefault but Remove(0) is always ignored.
//
// Built-in appenders:
//
//   - ConsoleAppender is the default appender. It writes one text line
//     per record to stdout and swallows its own failures.
//   - WriterAppender writes to any io.Writer and returns write errors.
//   - TeeAppender fans a record out to several appenders, combining
//     their errors with multierr.
//   - MemoryAppender keeps records in memory for inspection.
//
// Bridges to other logging libraries live in subpackages: zapappender,
// logrusappender, zerologappender and slogappender. metricsappender
// counts records per level with Prometheus counters.
package appender
