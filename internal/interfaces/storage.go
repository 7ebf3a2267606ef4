package interfaces

import (
	"context"
	"encoding/json"

	"github.com/bobmcallan/muskunits/internal/models"
)

// CacheStore is the optional external key-value cache used to carry
// last-known-good payloads across process restarts. Get returns the
// entry with its write timestamp; deciding whether the entry is still
// fresh is the caller's job.
type CacheStore interface {
	Get(ctx context.Context, key string) (*models.CacheEntry, error)
	Put(ctx context.Context, key string, data json.RawMessage) error
}

// StorageManager coordinates the cache backend and local data directory.
type StorageManager interface {
	CacheStore() CacheStore

	// DataPath returns the base local data directory (gold reserves
	// JSON, rendered charts).
	DataPath() string

	// WriteRaw writes arbitrary binary data (e.g. rendered chart PNGs)
	// under a subdirectory of the data path.
	WriteRaw(subdir, key string, data []byte) error

	Close() error
}
