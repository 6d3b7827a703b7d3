package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is matched by every construction-time validation
// failure in the framework.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError describes a rejected constructor argument.
type InvalidArgumentError struct {
	// Op is the rejecting operation, e.g. "DefineLevel"
	Op string
	// Arg names the offending argument
	Arg string
	// Value holds the rejected value
	Value interface{}
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid %s %q", e.Op, e.Arg, fmt.Sprint(e.Value))
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Unwrap returns ErrInvalidArgument.
func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// InvalidArgument returns an InvalidArgumentError annotated with a stack trace.
func InvalidArgument(op, arg string, value interface{}) error {
	return errors.WithStack(&InvalidArgumentError{Op: op, Arg: arg, Value: value})
}
