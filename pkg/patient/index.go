package patient

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/raseguard/raseguard/pkg/storage"
)

// Index is an in-memory patient-ID-to-record map, persisted to a storage
// backend as a single JSON document rather than one file per patient.
type Index struct {
	mu      sync.RWMutex
	entries map[string]*Metadata
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{entries: make(map[string]*Metadata)}
}

// Put inserts or replaces the metadata entry for a patient ID.
func (idx *Index) Put(patientID string, meta *Metadata) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.entries[patientID] = meta
}

// Get returns the metadata entry for a patient ID, if present.
func (idx *Index) Get(patientID string) (*Metadata, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	meta, ok := idx.entries[patientID]
	return meta, ok
}

// Touch stamps the metadata entry for a patient ID with the current time as
// its last-accessed time and returns the updated entry. Callers that want
// the timestamp persisted must still call Save; Touch only updates the
// in-memory index.
func (idx *Index) Touch(patientID string) (*Metadata, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	meta, ok := idx.entries[patientID]
	if !ok {
		return nil, false
	}
	meta.LastAccessed = time.Now().Unix()
	return meta, true
}

// Delete removes the metadata entry for a patient ID.
func (idx *Index) Delete(patientID string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	delete(idx.entries, patientID)
}

// List returns every indexed patient ID.
func (idx *Index) List() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	ids := make([]string, 0, len(idx.entries))
	for id := range idx.entries {
		ids = append(ids, id)
	}
	return ids
}

// Save persists the index to backend as a single JSON object keyed by
// patient ID, mirroring a savePatientIndex that writes the whole map at once.
func (idx *Index) Save(backend storage.Backend) error {
	idx.mu.RLock()
	data, err := json.Marshal(idx.entries)
	idx.mu.RUnlock()
	if err != nil {
		return err
	}
	return backend.Put(storage.PatientIndexPath, data, nil)
}

// LoadIndex reads the persisted index from backend. A missing index is not
// an error; it returns an empty Index so first-run protect calls succeed.
func LoadIndex(backend storage.Backend) (*Index, error) {
	data, err := backend.Get(storage.PatientIndexPath)
	if err == storage.ErrNotFound {
		return NewIndex(), nil
	}
	if err != nil {
		return nil, err
	}
	entries := make(map[string]*Metadata)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return &Index{entries: entries}, nil
}
