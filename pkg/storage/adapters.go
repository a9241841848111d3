package storage

import (
	"fmt"

	"github.com/raseguard/raseguard/pkg/validation"
)

// This file provides adapter functions that wrap Backend operations with
// fragment- and share-aware helpers, so callers never construct storage
// paths by hand.

// checkID rejects empty, path-traversing, or control-character record/secret
// IDs before they are turned into storage paths.
func checkID(id string) error {
	if err := validation.ValidateRecordID(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, err)
	}
	return nil
}

// SaveFragment stores fragment data at the given index for recordID.
// Returns ErrInvalidID if recordID is empty or unsafe.
func SaveFragment(backend Backend, recordID string, index int, data []byte) error {
	if err := checkID(recordID); err != nil {
		return err
	}
	return backend.Put(FragmentPath(recordID, index), data, nil)
}

// GetFragment retrieves fragment data at the given index for recordID.
// Returns ErrInvalidID if recordID is empty or unsafe.
// Returns ErrNotFound if the fragment does not exist.
func GetFragment(backend Backend, recordID string, index int) ([]byte, error) {
	if err := checkID(recordID); err != nil {
		return nil, err
	}
	return backend.Get(FragmentPath(recordID, index))
}

// DeleteFragment removes fragment data at the given index for recordID.
// Returns ErrInvalidID if recordID is empty or unsafe.
func DeleteFragment(backend Backend, recordID string, index int) error {
	if err := checkID(recordID); err != nil {
		return err
	}
	return backend.Delete(FragmentPath(recordID, index))
}

// FragmentExists checks whether a fragment at the given index exists for recordID.
// Returns ErrInvalidID if recordID is empty or unsafe.
func FragmentExists(backend Backend, recordID string, index int) (bool, error) {
	if err := checkID(recordID); err != nil {
		return false, err
	}
	return backend.Exists(FragmentPath(recordID, index))
}

// SaveShare stores share data at the given index for secretID.
// Returns ErrInvalidID if secretID is empty or unsafe.
func SaveShare(backend Backend, secretID string, index int, data []byte) error {
	if err := checkID(secretID); err != nil {
		return err
	}
	return backend.Put(SharePath(secretID, index), data, nil)
}

// GetShare retrieves share data at the given index for secretID.
// Returns ErrInvalidID if secretID is empty or unsafe.
// Returns ErrNotFound if the share does not exist.
func GetShare(backend Backend, secretID string, index int) ([]byte, error) {
	if err := checkID(secretID); err != nil {
		return nil, err
	}
	return backend.Get(SharePath(secretID, index))
}

// DeleteShare removes share data at the given index for secretID.
// Returns ErrInvalidID if secretID is empty or unsafe.
func DeleteShare(backend Backend, secretID string, index int) error {
	if err := checkID(secretID); err != nil {
		return err
	}
	return backend.Delete(SharePath(secretID, index))
}

// ShareExists checks whether a share at the given index exists for secretID.
// Returns ErrInvalidID if secretID is empty or unsafe.
func ShareExists(backend Backend, secretID string, index int) (bool, error) {
	if err := checkID(secretID); err != nil {
		return false, err
	}
	return backend.Exists(SharePath(secretID, index))
}
