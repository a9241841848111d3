// Package storage provides the key-value abstraction that fragments, shares,
// and the patient index are written through. pkg/storage/namespace.go and
// adapters.go build the fragments/{recordID}/{index}.frag and
// shares/{secretID}/{index}.share key conventions on top of it; this file
// just defines what a backend has to do to host them.
package storage

import (
	"io/fs"
)

// Backend defines the interface for storage backends. protect/recover/split/
// reconstruct and protect-patient/recover-patient never talk to a file or
// map directly — they go through this interface via the namespace helpers,
// so --storage memory and --storage file are interchangeable at the CLI
// layer. All implementations must be thread-safe.
type Backend interface {
	// Get retrieves the fragment, share, or index blob stored at key.
	// Returns ErrNotFound if the key does not exist.
	Get(key string) ([]byte, error)

	// Put stores value at key with optional metadata.
	// If the key already exists, it will be overwritten.
	Put(key string, value []byte, opts *Options) error

	// Delete removes the key and its value from storage.
	// Returns ErrNotFound if the key does not exist.
	Delete(key string) error

	// List returns all keys with the given prefix, used to enumerate a
	// record's fragments (FragmentPrefix) or a secret's shares (SharePrefix).
	// If prefix is empty, all keys are returned.
	List(prefix string) ([]string, error)

	// Exists checks if a key exists in storage.
	Exists(key string) (bool, error)

	// Close releases any resources held by the backend.
	Close() error
}

// Options contains optional parameters for storage operations.
type Options struct {
	// Path is the base path for file-based storage backends
	Path string

	// Permissions sets the file permissions for file-based storage
	Permissions fs.FileMode

	// Metadata contains additional key-value pairs for storage operations
	Metadata map[string]string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Path:        "",
		Permissions: 0600, // Read/write for owner only
		Metadata:    make(map[string]string),
	}
}
