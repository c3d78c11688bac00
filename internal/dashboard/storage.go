package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Storage persists the full layout sequence between sessions.
type Storage interface {
	// Load returns the persisted sequence, or ErrNoLayout when nothing
	// usable is stored.
	Load() ([]Item, error)
	// Save replaces the persisted sequence with items.
	Save(items []Item) error
}

// ErrNoLayout signals that no persisted layout exists or it cannot be
// decoded. Callers recover by falling back to DefaultLayout.
var ErrNoLayout = errors.New("no stored layout")

// FileStore persists the layout as a JSON array in a single file, the
// local-storage slot of this design.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load() ([]Item, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, ErrNoLayout
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, ErrNoLayout
	}
	return items, nil
}

// Save writes to a temp file and renames it into place so a crash mid-write
// never leaves a truncated layout behind.
func (f *FileStore) Save(items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create layout dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "layout-*.json")
	if err != nil {
		return fmt.Errorf("create temp layout: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write layout: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close layout: %w", err)
	}
	return os.Rename(tmp.Name(), f.path)
}
