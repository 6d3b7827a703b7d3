// Package core defines the shared types used across levellog.
//
// It provides the Level type and its Registry, the Record type that
// represents a single formatted log event, the value renderer used to
// turn call arguments into text, and the Clock used for timestamps.
//
// A Level is an immutable name/priority pair. Levels compare by
// priority only, so levels sharing a tier (INFO and TODO, WARN and
// FIXME, ERROR and XXX) gate identically while keeping their own name
// in the record prefix. The zero Level is invalid; DefineLevel is the
// only way to create a custom one and it rejects names that are not a
// non-empty run of ASCII letters with ErrInvalidArgument.
//
// A Registry is the explicit name to level mapping used by the generic
// logging entry points, so a level defined at any time is reachable by
// name without code generation.
//
// AppendValue renders common scalar types through strconv so that the
// usual int, bool and string arguments never go through fmt. Other
// values fall back to fmt's %+v verb.
package core
