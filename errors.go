package fadestream

import (
	"errors"
	"fmt"
)

// Error kinds raised by the stream engine. All failures surfaced by this
// module wrap exactly one of these sentinels, so callers can classify with
// errors.Is regardless of the message text.
var (
	// ErrTypeMismatch indicates an argument's shape does not match the
	// expected one, e.g. a nil func passed where a callback is required.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrNilPointer indicates a required non-absent value was absent.
	ErrNilPointer = errors.New("nil pointer")
	// ErrIllegalArgument indicates a structurally invalid parameter, such as
	// a zero step or a non-terminating numeric range.
	ErrIllegalArgument = errors.New("illegal argument")
	// ErrIllegalState indicates an internal invariant violation; it is not
	// reachable through documented inputs.
	ErrIllegalState = errors.New("illegal state")
	// ErrUnsupportedOperation indicates an attempt to mutate a read-only view.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

func TypeMismatchf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrTypeMismatch, fmt.Sprintf(format, args...))
}

func NilPointerf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNilPointer, fmt.Sprintf(format, args...))
}

func IllegalArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, fmt.Sprintf(format, args...))
}

func IllegalStatef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalState, fmt.Sprintf(format, args...))
}

func UnsupportedOperationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedOperation, fmt.Sprintf(format, args...))
}
