package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON file per slot under a data directory. Writes go
// through a temp file and rename so a crash never leaves a half-written slot.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(slot string) string {
	return filepath.Join(s.dir, slot+".json")
}

func (s *FileStore) Load(slot string, into any) (bool, error) {
	data, err := os.ReadFile(s.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read slot %s: %w", slot, err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return false, fmt.Errorf("decode slot %s: %w", slot, err)
	}
	return true, nil
}

func (s *FileStore) Save(slot string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", slot, err)
	}
	tmp := s.path(slot) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write slot %s: %w", slot, err)
	}
	if err := os.Rename(tmp, s.path(slot)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("commit slot %s: %w", slot, err)
	}
	return nil
}
