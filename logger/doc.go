// Package logger is the public API of levellog. Most users only need to
// import this package.
//
// A Config holds the global switch, the global minimum level and the
// global appender list. The package initializes a default Config in
// init(); Get builds named loggers bound to it:
//
//	log := logger.MustGet("db")
//	log.Info("connected to {} in {}ms", host, 12)
//	// [INFO] (db) connected to localhost in 12ms
//
// Each Logger copies the global appender list when it is built and has
// its own minimum level and enabled, verbose and timestamp switches. A
// call reaches the appenders only when both the config and the logger
// are enabled and the level passes both minimums. The V-variants
// (VInfo, VDebug, ...) additionally require verbosity.
//
// Runtime setters never fail: invalid input keeps the previous value.
// Only construction with an empty name returns an error.
//
// Tests and embedding programs can swap the default:
//
//	restore := logger.ReplaceDefault(logger.NewConfig(
//	    logger.WithDefaultAppender(appender.NewMemoryAppender()),
//	))
//	defer restore()
package logger
