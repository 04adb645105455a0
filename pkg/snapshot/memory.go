package snapshot

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps snapshots in process memory. Useful in tests and as
// a scratch store for round-trip checks.
type MemoryStore struct {
	mu    sync.RWMutex
	snaps map[string]*Snapshot
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snaps: make(map[string]*Snapshot)}
}

func (s *MemoryStore) Put(ctx context.Context, name string, snap *Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps[name] = snap
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, name string) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snaps[name]
	if !ok {
		return nil, ErrSnapshotNotFound
	}
	return snap, nil
}

func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.snaps[name]; !ok {
		return ErrSnapshotNotFound
	}
	delete(s.snaps, name)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.snaps))
	for name := range s.snaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
