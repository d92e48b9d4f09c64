// Package state persists small values that must survive across runs.
//
// The store is a flat JSON object on disk. Callers check [Store.Exists]
// to tell a first run from a later one instead of relying on a read error.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Keys for values chosen once and reused by later runs.
const (
	// KeyHubName holds the globally unique IoT Hub name.
	KeyHubName = "hub_name"
	// KeyStorageAccount holds the generated storage account name.
	KeyStorageAccount = "storage_account"
	// KeyFunctionApp holds the function app name.
	KeyFunctionApp = "function_app"
)

// ErrKeyNotFound is returned by Get when a key has never been set.
var ErrKeyNotFound = errors.New("state key not found")

// Store is a typed key-value state store.
type Store interface {
	Exists(key string) (bool, error)
	Get(key string) (string, error)
	Set(key, value string) error
}

// FileStore is a Store backed by a JSON file. Every Set rewrites the file.
type FileStore struct {
	path string
}

// NewFileStore returns a store persisted at path. The file is created on first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Exists reports whether key has been set.
func (s *FileStore) Exists(key string) (bool, error) {
	values, err := s.load()
	if err != nil {
		return false, err
	}
	_, ok := values[key]
	return ok, nil
}

// Get returns the value for key, or ErrKeyNotFound.
func (s *FileStore) Get(key string) (string, error) {
	values, err := s.load()
	if err != nil {
		return "", err
	}
	v, ok := values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return v, nil
}

// Set stores value under key and persists the whole state atomically.
func (s *FileStore) Set(key, value string) error {
	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

// Keys returns every stored key in sorted order.
func (s *FileStore) Keys() ([]string, error) {
	values, err := s.load()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *FileStore) load() (map[string]string, error) {
	// #nosec G304 - path comes from configuration
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	values := make(map[string]string)
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", s.path, err)
	}
	return values, nil
}

func (s *FileStore) save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".state-*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
