package config

import "errors"

var (
	// ErrNilPointer is returned when a nil pointer is passed to Load.
	ErrNilPointer = errors.New("config: nil pointer")

	// ErrParse is returned when the environment cannot be parsed into the
	// target struct. The underlying parser error is joined for context.
	ErrParse = errors.New("config: failed to parse environment")
)
