package luahost

import "errors"

// Errors for Lua host operations.
var (
	// ErrHostClosed is returned when operating on a closed host or state.
	ErrHostClosed = errors.New("lua host is closed")

	// ErrInvalidTypeTag is raised when a method receives a value that is not
	// a regexp2 object.
	ErrInvalidTypeTag = errors.New("invalid type tag")
)
