package directory

import "errors"

var (
	// ErrStorageUnavailable wraps any record store failure.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrNotFound is returned for unknown or inactive listings and unknown region slugs.
	ErrNotFound = errors.New("not found")
)
