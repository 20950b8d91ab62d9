package interfaces

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by repositories, services and handlers. Callers match
// with errors.Is; nothing below the handler layer recovers from these.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnavailable     = errors.New("store unavailable")
)

// InvalidArgument wraps a message as ErrInvalidArgument.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Unavailable marks err as a store failure while keeping the cause reachable.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
}
