package rexspan

import (
	"errors"
	"fmt"
)

// Common rexspan errors
var (
	// ErrInvalidPattern indicates the engine rejected the expression
	ErrInvalidPattern = errors.New("invalid regex pattern")

	// ErrInvalidHandle indicates an operation on a nil, uninitialized or
	// released pattern
	ErrInvalidHandle = errors.New("the regexp2 is invalid")

	// ErrAlreadyConstructed indicates a second construction of a Handle
	ErrAlreadyConstructed = errors.New("regexp2 already constructed")

	// ErrInvalidOffset indicates a negative match offset or one inside a
	// multibyte UTF-8 sequence
	ErrInvalidOffset = errors.New("invalid offset")

	// ErrUnknownBackend indicates a Config naming an unsupported engine
	ErrUnknownBackend = errors.New("unknown engine backend")
)

// CompileError wraps compilation errors with the expression and backend
// that produced them.
type CompileError struct {
	Pattern string
	Backend string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Backend != "" {
		return fmt.Sprintf("compile %q (%s): %v", e.Pattern, e.Backend, e.Err)
	}
	return fmt.Sprintf("compile %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the engine error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Is reports ErrInvalidPattern as a match so callers can test
// errors.Is(err, ErrInvalidPattern) without unwrapping the engine error.
func (e *CompileError) Is(target error) bool {
	return target == ErrInvalidPattern
}
