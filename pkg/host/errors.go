package host

import (
	"github.com/NahejL/electron/pkg/errors"
)

// ThrowTypeError builds the bad-argument error the host surfaces for
// argument count, type, or value violations. The failed call has no
// effect.
func ThrowTypeError(message string) error {
	return errors.New(errors.ErrCodeBadArgument, message)
}

// ThrowError builds a generic host error for invalid-state conditions.
func ThrowError(message string) error {
	return errors.New(errors.ErrCodeInvalidState, message)
}
