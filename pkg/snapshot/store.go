package snapshot

import (
	"context"
	"errors"
)

// AutosaveName is the well-known store entry the autosave loop writes.
const AutosaveName = "autosave"

// ErrSnapshotNotFound is returned by Store.Get and Store.Delete when no
// entry exists under the requested name.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Store is a named snapshot repository. Implementations decide on
// durability and lifetime; names are opaque identifiers chosen by the
// caller.
type Store interface {
	// Put writes or overwrites the snapshot stored under name.
	Put(ctx context.Context, name string, snap *Snapshot) error

	// Get returns the snapshot stored under name, or
	// ErrSnapshotNotFound.
	Get(ctx context.Context, name string) (*Snapshot, error)

	// Delete removes the entry under name. Deleting a missing entry
	// returns ErrSnapshotNotFound.
	Delete(ctx context.Context, name string) error

	// List returns the names of every stored snapshot, sorted.
	List(ctx context.Context) ([]string, error)
}
