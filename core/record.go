package core

import "time"

// Record is a single formatted log event as handed to appenders.
//
// Values is the appender argument list: the formatted prefix first,
// followed by the call arguments left after template substitution.
type Record struct {
	Time   time.Time
	Level  Level
	Logger string
	Values []interface{}
}

// NewRecord builds a record with prefix as its first value.
func NewRecord(t time.Time, level Level, logger, prefix string, args []interface{}) *Record {
	values := make([]interface{}, 0, len(args)+1)
	values = append(values, prefix)
	values = append(values, args...)
	return &Record{
		Time:   t,
		Level:  level,
		Logger: logger,
		Values: values,
	}
}

// Prefix returns the formatted prefix, or "" if the record has none.
func (r *Record) Prefix() string {
	if len(r.Values) == 0 {
		return ""
	}
	s, _ := r.Values[0].(string)
	return s
}

// Args returns the values following the prefix.
func (r *Record) Args() []interface{} {
	if len(r.Values) < 2 {
		return nil
	}
	return r.Values[1:]
}

// Message renders the arguments space-separated, without the prefix.
func (r *Record) Message() string {
	return Sprint(r.Args()...)
}

// String renders all values space-separated.
func (r *Record) String() string {
	return Sprint(r.Values...)
}
