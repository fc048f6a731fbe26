package credstore

import "errors"

var (
	// ErrNoCredential indicates no token is present in any storage location.
	ErrNoCredential = errors.New("credstore: no credential")

	// ErrPersist indicates a token could not be written to every location.
	// No partial copy survives: the composite rolls back on write failure.
	ErrPersist = errors.New("credstore: failed to persist credential")

	// ErrClear indicates at least one location could not be erased. The
	// remaining locations are still cleared before this is returned.
	ErrClear = errors.New("credstore: failed to clear credential")
)
