package logger

import "github.com/philipp01105/levellog/core"

// Shortcuts for the built-in levels. Custom levels go through Log, VLog
// and LogNamed.

// Trace logs a trace message
func (l *Logger) Trace(args ...interface{}) *Logger {
	return l.Log(core.TraceLevel, args...)
}

// VTrace logs a trace message if verbosity is enabled
func (l *Logger) VTrace(args ...interface{}) *Logger {
	return l.VLog(core.TraceLevel, args...)
}

// IsTraceEnabled reports whether TRACE passes the logger's minimum level
func (l *Logger) IsTraceEnabled() bool {
	return l.IsEnabledFor(core.TraceLevel)
}

// Debug logs a debug message
func (l *Logger) Debug(args ...interface{}) *Logger {
	return l.Log(core.DebugLevel, args...)
}

// VDebug logs a debug message if verbosity is enabled
func (l *Logger) VDebug(args ...interface{}) *Logger {
	return l.VLog(core.DebugLevel, args...)
}

// IsDebugEnabled reports whether DEBUG passes the logger's minimum level
func (l *Logger) IsDebugEnabled() bool {
	return l.IsEnabledFor(core.DebugLevel)
}

// Info logs an info message
func (l *Logger) Info(args ...interface{}) *Logger {
	return l.Log(core.InfoLevel, args...)
}

// VInfo logs an info message if verbosity is enabled
func (l *Logger) VInfo(args ...interface{}) *Logger {
	return l.VLog(core.InfoLevel, args...)
}

// IsInfoEnabled reports whether INFO passes the logger's minimum level
func (l *Logger) IsInfoEnabled() bool {
	return l.IsEnabledFor(core.InfoLevel)
}

// Todo logs a TODO message
func (l *Logger) Todo(args ...interface{}) *Logger {
	return l.Log(core.TodoLevel, args...)
}

// VTodo logs a TODO message if verbosity is enabled
func (l *Logger) VTodo(args ...interface{}) *Logger {
	return l.VLog(core.TodoLevel, args...)
}

// IsTodoEnabled reports whether TODO passes the logger's minimum level
func (l *Logger) IsTodoEnabled() bool {
	return l.IsEnabledFor(core.TodoLevel)
}

// Fixme logs a FIXME message
func (l *Logger) Fixme(args ...interface{}) *Logger {
	return l.Log(core.FixmeLevel, args...)
}

// VFixme logs a FIXME message if verbosity is enabled
func (l *Logger) VFixme(args ...interface{}) *Logger {
	return l.VLog(core.FixmeLevel, args...)
}

// IsFixmeEnabled reports whether FIXME passes the logger's minimum level
func (l *Logger) IsFixmeEnabled() bool {
	return l.IsEnabledFor(core.FixmeLevel)
}

// Warn logs a warning message
func (l *Logger) Warn(args ...interface{}) *Logger {
	return l.Log(core.WarnLevel, args...)
}

// VWarn logs a warning message if verbosity is enabled
func (l *Logger) VWarn(args ...interface{}) *Logger {
	return l.VLog(core.WarnLevel, args...)
}

// IsWarnEnabled reports whether WARN passes the logger's minimum level
func (l *Logger) IsWarnEnabled() bool {
	return l.IsEnabledFor(core.WarnLevel)
}

// XXX logs an XXX message
func (l *Logger) XXX(args ...interface{}) *Logger {
	return l.Log(core.XXXLevel, args...)
}

// VXXX logs an XXX message if verbosity is enabled
func (l *Logger) VXXX(args ...interface{}) *Logger {
	return l.VLog(core.XXXLevel, args...)
}

// IsXXXEnabled reports whether XXX passes the logger's minimum level
func (l *Logger) IsXXXEnabled() bool {
	return l.IsEnabledFor(core.XXXLevel)
}

// Error logs an error message
func (l *Logger) Error(args ...interface{}) *Logger {
	return l.Log(core.ErrorLevel, args...)
}

// VError logs an error message if verbosity is enabled
func (l *Logger) VError(args ...interface{}) *Logger {
	return l.VLog(core.ErrorLevel, args...)
}

// IsErrorEnabled reports whether ERROR passes the logger's minimum level
func (l *Logger) IsErrorEnabled() bool {
	return l.IsEnabledFor(core.ErrorLevel)
}

// Fatal logs a fatal message. The process is not terminated.
func (l *Logger) Fatal(args ...interface{}) *Logger {
	return l.Log(core.FatalLevel, args...)
}

// VFatal logs a fatal message if verbosity is enabled
func (l *Logger) VFatal(args ...interface{}) *Logger {
	return l.VLog(core.FatalLevel, args...)
}

// IsFatalEnabled reports whether FATAL passes the logger's minimum level
func (l *Logger) IsFatalEnabled() bool {
	return l.IsEnabledFor(core.FatalLevel)
}
