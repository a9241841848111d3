package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFragmentPath(t *testing.T) {
	tests := []struct {
		name     string
		recordID string
		index    int
		expect   string
	}{
		{name: "first fragment", recordID: "patient-1", index: 0, expect: "fragments/patient-1/0.frag"},
		{name: "tenth fragment", recordID: "patient-1", index: 9, expect: "fragments/patient-1/9.frag"},
		{name: "UUID-style record", recordID: "550e8400-e29b-41d4-a716-446655440000", index: 3, expect: "fragments/550e8400-e29b-41d4-a716-446655440000/3.frag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, FragmentPath(tt.recordID, tt.index))
		})
	}
}

func TestSharePath(t *testing.T) {
	tests := []struct {
		name     string
		secretID string
		index    int
		expect   string
	}{
		{name: "first share", secretID: "key-1", index: 1, expect: "shares/key-1/1.share"},
		{name: "tenth share", secretID: "key-1", index: 10, expect: "shares/key-1/10.share"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, SharePath(tt.secretID, tt.index))
		})
	}
}

func TestListFragmentIndexes(t *testing.T) {
	backend := newMockBackend()
	backend.Put(FragmentPath("rec-1", 0), []byte("a"), nil)
	backend.Put(FragmentPath("rec-1", 1), []byte("b"), nil)
	backend.Put(FragmentPath("rec-1", 2), []byte("c"), nil)
	backend.Put(FragmentPath("rec-2", 0), []byte("other"), nil)

	indexes, err := ListFragmentIndexes(backend, "rec-1")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2}, indexes)
}

func TestListFragmentIndexes_Empty(t *testing.T) {
	backend := newMockBackend()
	indexes, err := ListFragmentIndexes(backend, "rec-1")
	assert.NoError(t, err)
	assert.Empty(t, indexes)
}

func TestListFragmentIndexes_Error(t *testing.T) {
	backend := &errorMockBackend{listErr: ErrClosed}
	_, err := ListFragmentIndexes(backend, "rec-1")
	assert.Error(t, err)
}

func TestListShareIndexes(t *testing.T) {
	backend := newMockBackend()
	backend.Put(SharePath("secret-1", 1), []byte("a"), nil)
	backend.Put(SharePath("secret-1", 2), []byte("b"), nil)
	backend.Put(SharePath("secret-2", 1), []byte("other"), nil)

	indexes, err := ListShareIndexes(backend, "secret-1")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, indexes)
}

func TestListShareIndexes_Empty(t *testing.T) {
	backend := newMockBackend()
	indexes, err := ListShareIndexes(backend, "secret-1")
	assert.NoError(t, err)
	assert.Empty(t, indexes)
}

func TestListShareIndexes_Error(t *testing.T) {
	backend := &errorMockBackend{listErr: ErrClosed}
	_, err := ListShareIndexes(backend, "secret-1")
	assert.Error(t, err)
}

// mockBackend provides a simple in-memory implementation for testing.
type mockBackend struct {
	data map[string][]byte
}

func newMockBackend() *mockBackend {
	return &mockBackend{
		data: make(map[string][]byte),
	}
}

func (m *mockBackend) Get(key string) ([]byte, error) {
	if val, ok := m.data[key]; ok {
		return val, nil
	}
	return nil, ErrNotFound
}

func (m *mockBackend) Put(key string, value []byte, opts *Options) error {
	m.data[key] = value
	return nil
}

func (m *mockBackend) Delete(key string) error {
	if _, exists := m.data[key]; !exists {
		return ErrNotFound
	}
	delete(m.data, key)
	return nil
}

func (m *mockBackend) List(prefix string) ([]string, error) {
	var keys []string
	for k := range m.data {
		if prefix == "" || (len(k) >= len(prefix) && k[:len(prefix)] == prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (m *mockBackend) Exists(key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

func (m *mockBackend) Close() error {
	return nil
}

// errorMockBackend returns errors on operations.
type errorMockBackend struct {
	getErr    error
	putErr    error
	deleteErr error
	listErr   error
	existsErr error
}

func (e *errorMockBackend) Get(key string) ([]byte, error) {
	if e.getErr != nil {
		return nil, e.getErr
	}
	return nil, ErrNotFound
}

func (e *errorMockBackend) Put(key string, value []byte, opts *Options) error {
	if e.putErr != nil {
		return e.putErr
	}
	return nil
}

func (e *errorMockBackend) Delete(key string) error {
	if e.deleteErr != nil {
		return e.deleteErr
	}
	return ErrNotFound
}

func (e *errorMockBackend) List(prefix string) ([]string, error) {
	if e.listErr != nil {
		return nil, e.listErr
	}
	return nil, nil
}

func (e *errorMockBackend) Exists(key string) (bool, error) {
	if e.existsErr != nil {
		return false, e.existsErr
	}
	return false, nil
}

func (e *errorMockBackend) Close() error {
	return nil
}
