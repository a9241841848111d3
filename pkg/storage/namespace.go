package storage

import (
	"strconv"
	"strings"
)

// PatientIndexPath is the fixed key under which the patient ID to record
// ID index is stored as a single JSON blob.
const PatientIndexPath = "index/patients.json"

// FragmentPath returns the storage path for the fragment at the given index
// of the record identified by recordID. The path follows the convention:
// fragments/{recordID}/{index}.frag
func FragmentPath(recordID string, index int) string {
	return "fragments/" + recordID + "/" + strconv.Itoa(index) + ".frag"
}

// FragmentPrefix returns the storage prefix under which all fragments of a
// record are listed.
func FragmentPrefix(recordID string) string {
	return "fragments/" + recordID + "/"
}

// SharePath returns the storage path for the share at the given index of the
// secret identified by secretID. The path follows the convention:
// shares/{secretID}/{index}.share
func SharePath(secretID string, index int) string {
	return "shares/" + secretID + "/" + strconv.Itoa(index) + ".share"
}

// SharePrefix returns the storage prefix under which all shares of a secret
// are listed.
func SharePrefix(secretID string) string {
	return "shares/" + secretID + "/"
}

// ListFragmentIndexes retrieves all fragment indexes stored for recordID.
// Returns an empty slice if no fragments exist.
func ListFragmentIndexes(backend Backend, recordID string) ([]int, error) {
	prefix := FragmentPrefix(recordID)
	keys, err := backend.List(prefix)
	if err != nil {
		return nil, err
	}

	indexes := make([]int, 0, len(keys))
	for _, k := range keys {
		rest := strings.TrimPrefix(k, prefix)
		rest = strings.TrimSuffix(rest, ".frag")
		idx, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		indexes = append(indexes, idx)
	}
	return indexes, nil
}

// ListShareIndexes retrieves all share indexes stored for secretID.
// Returns an empty slice if no shares exist.
func ListShareIndexes(backend Backend, secretID string) ([]int, error) {
	prefix := SharePrefix(secretID)
	keys, err := backend.List(prefix)
	if err != nil {
		return nil, err
	}

	indexes := make([]int, 0, len(keys))
	for _, k := range keys {
		rest := strings.TrimPrefix(k, prefix)
		rest = strings.TrimSuffix(rest, ".share")
		idx, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		indexes = append(indexes, idx)
	}
	return indexes, nil
}
