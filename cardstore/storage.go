package cardstore

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Storage is the backend a Store persists its card blob to. Implementations
// get and set raw bytes under a namespaced key; they do not interpret the
// payload.
type Storage interface {
	// Get returns the stored bytes for key, with ok=false when the key has
	// never been written.
	Get(key string) (data []byte, ok bool, err error)
	// Set replaces the stored bytes for key.
	Set(key string, data []byte) error
}

// FileStorage keeps each key as a JSON file inside a directory. It is the
// server-side stand-in for the single browser storage blob the card gallery
// originally persisted to.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (f *FileStorage) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileStorage) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (f *FileStorage) Set(key string, data []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(key))
}

// MemoryStorage is an in-memory Storage used in tests.
type MemoryStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (m *MemoryStorage) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	return data, ok, nil
}

func (m *MemoryStorage) Set(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	return nil
}
