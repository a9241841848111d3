package storage

import "errors"

var (
	// ErrClosed is returned when attempting to use a closed storage backend.
	ErrClosed = errors.New("storage: closed")

	// ErrNotFound is returned when a fragment, share, or index entry is not found.
	ErrNotFound = errors.New("storage: not found")

	// ErrAlreadyExists reports a fragment or share that already exists at
	// that record/secret ID and index. Put overwrites existing keys, so no
	// backend or adapter in this package returns it.
	ErrAlreadyExists = errors.New("storage: already exists")

	// ErrInvalidID is returned when a record or secret ID is invalid or empty.
	ErrInvalidID = errors.New("storage: invalid ID")

	// ErrInvalidData reports fragment, share, or index data that is invalid or
	// malformed. No backend or adapter in this package returns it; malformed
	// data surfaces as the decoding error of the caller that parses it.
	ErrInvalidData = errors.New("storage: invalid data")
)
