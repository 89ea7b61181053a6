package cart

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Storage persists the full cart snapshot. Implementations must treat an
// absent snapshot as an empty cart, not an error.
type Storage interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// MemoryStorage keeps the snapshot in process memory. Used in tests and as
// the default when no durable medium is configured.
type MemoryStorage struct {
	snapshot []byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load() ([]Item, error) {
	if m.snapshot == nil {
		return nil, nil
	}
	var items []Item
	if err := json.Unmarshal(m.snapshot, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (m *MemoryStorage) Save(items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	m.snapshot = data
	return nil
}

// FileStorage writes the snapshot as JSON to a single file on disk.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// DefaultFilePath places the snapshot under dir using the fixed namespace key.
func DefaultFilePath(dir string) string {
	return filepath.Join(dir, StorageKey+".json")
}

func (f *FileStorage) Load() ([]Item, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (f *FileStorage) Save(items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}
