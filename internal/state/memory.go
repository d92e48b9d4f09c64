package state

import "fmt"

// MemoryStore is an in-memory Store.
type MemoryStore struct {
	Values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Values: make(map[string]string)}
}

func (m *MemoryStore) Exists(key string) (bool, error) {
	_, ok := m.Values[key]
	return ok, nil
}

func (m *MemoryStore) Get(key string) (string, error) {
	v, ok := m.Values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return v, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.Values[key] = value
	return nil
}
