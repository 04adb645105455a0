package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const fileExt = ".json"

// FileStore keeps snapshots as JSON files in a single directory, one
// file per name. It is the default backend for autosave.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store
// rooted at it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid snapshot name %q", name)
	}
	return filepath.Join(s.dir, name+fileExt), nil
}

func (s *FileStore) Put(ctx context.Context, name string, snap *Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(name)
	if err != nil {
		return err
	}
	return WriteFile(snap, path)
}

func (s *FileStore) Get(ctx context.Context, name string) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	snap, err := ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrSnapshotNotFound
	}
	return snap, err
}

func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrSnapshotNotFound
		}
		return fmt.Errorf("delete snapshot %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), fileExt))
	}
	sort.Strings(names)
	return names, nil
}
