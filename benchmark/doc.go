// Package benchmark holds levellog benchmarks that span several
// packages, including comparisons against zap, slog, logrus and
// zerolog writing to io.Discard. It has no non-test code.
package benchmark
