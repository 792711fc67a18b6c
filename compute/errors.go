package compute

import (
	"errors"
	"fmt"

	"github.com/jonwraymond/toolcompute/datum"
)

// Sentinel errors for error classification.
var (
	// ErrInvalidArgument indicates that arguments were rejected before the
	// invoker was called.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFunctionNotFound indicates that no function is registered under the
	// requested name.
	ErrFunctionNotFound = errors.New("function not found")

	// ErrFunctionExists is returned when registering a duplicate function name.
	ErrFunctionExists = errors.New("function already registered")

	// ErrArity indicates a call with the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")

	// ErrNoInvoker indicates an ExecContext without an invoker.
	ErrNoInvoker = errors.New("no invoker configured")
)

// TypeMismatchError reports a set lookup whose value set type differs from
// the type of the values being looked up.
type TypeMismatchError struct {
	// ValuesType is the comparison type of the looked-up values, after
	// dictionary unwrapping.
	ValuesType datum.DataType

	// ValueSetType is the element type of the reference collection.
	ValueSetType datum.DataType
}

// Error returns a message naming both types.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: array type didn't match type of values set: %s vs %s",
		ErrInvalidArgument, typeName(e.ValuesType), typeName(e.ValueSetType))
}

// Is reports whether this error matches the target.
// TypeMismatchError matches ErrInvalidArgument.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func typeName(t datum.DataType) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
