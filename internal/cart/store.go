package cart

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// Store persists cart lines between runs.
type Store interface {
	Load() ([]Item, error)
	Save([]Item) error
}

// DefaultFileName mirrors the web client's "leafygo_cart" storage key.
const DefaultFileName = "leafygo_cart.json"

// FileStore keeps the serialized cart in a single JSON file, the local
// equivalent of the web client's "leafygo_cart" storage entry.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultFileName
	}
	return &FileStore{Path: path}
}

func (s *FileStore) Load() ([]Item, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *FileStore) Save(items []Item) error {
	if items == nil {
		items = []Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, b, 0644)
}
