// Package docstore persists the planner document as a single opaque blob
// under one storage key, behind pluggable blob drivers.
package docstore

import (
	"context"
	"errors"
)

// StorageKey is the single key the whole document lives under, for drivers
// that address blobs by key.
const StorageKey = "calendar-app-data"

// ErrNotFound is returned by a Blob when no document has been saved yet.
var ErrNotFound = errors.New("document blob not found")

// Blob reads and writes the raw persisted document.
type Blob interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
