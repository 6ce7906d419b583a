package settings

import (
	"os"
	"sync"

	"github.com/joho/godotenv"

	"github.com/holectl/holectl/src/internal/errors"
)

// Store is a read-only view of the settings key/value mapping.
type Store interface {
	// Get returns the raw value of key and whether the key is present.
	Get(key string) (string, bool)
}

// MapStore is an in-memory Store.
type MapStore map[string]string

// Get implements Store.
func (m MapStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// FileStore is a Store backed by a setupVars.conf file. The file is parsed
// once on load and again on every Reload.
type FileStore struct {
	path string

	mu     sync.RWMutex
	values map[string]string
}

// LoadFile parses the settings file at path.
func LoadFile(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.path
}

// Reload re-reads the settings file. On failure the previous values are kept.
func (s *FileStore) Reload() error {
	f, err := os.Open(s.path)
	if err != nil {
		return errors.NewSettingsError("failed to open settings file "+s.path, err)
	}
	defer f.Close()

	values, err := godotenv.Parse(f)
	if err != nil {
		return errors.NewSettingsError("failed to parse settings file "+s.path, err)
	}

	s.mu.Lock()
	s.values = values
	s.mu.Unlock()
	return nil
}

// Get implements Store.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Snapshot returns a copy of the current values.
func (s *FileStore) Snapshot() MapStore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(MapStore, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
