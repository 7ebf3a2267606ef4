package surrealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/bobmcallan/muskunits/internal/common"
	"github.com/bobmcallan/muskunits/internal/models"
)

// cacheRow is the stored shape. Payloads are kept as JSON strings so
// the table stays schemaless regardless of what each service caches.
type cacheRow struct {
	Key       string    `json:"key"`
	Data      string    `json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCacheRow(key string, data json.RawMessage) cacheRow {
	return cacheRow{
		Key:       key,
		Data:      string(data),
		UpdatedAt: time.Now().UTC(),
	}
}

func (r cacheRow) entry() *models.CacheEntry {
	return &models.CacheEntry{
		Key:       r.Key,
		Data:      json.RawMessage(r.Data),
		UpdatedAt: r.UpdatedAt,
	}
}

// CacheStore implements interfaces.CacheStore on the cache table.
type CacheStore struct {
	db     *surrealdb.DB
	logger *common.Logger
}

func NewCacheStore(db *surrealdb.DB, logger *common.Logger) *CacheStore {
	return &CacheStore{
		db:     db,
		logger: logger,
	}
}

// Get returns the entry for key, or nil when no entry exists.
func (s *CacheStore) Get(ctx context.Context, key string) (*models.CacheEntry, error) {
	row, err := surrealdb.Select[cacheRow](ctx, s.db, surrealmodels.NewRecordID("cache", key))
	if err != nil {
		return nil, fmt.Errorf("failed to select cache entry %s: %w", key, err)
	}
	if row == nil || row.Key == "" {
		return nil, nil
	}

	return row.entry(), nil
}

// Put upserts the entry for key, stamping the write time.
func (s *CacheStore) Put(ctx context.Context, key string, data json.RawMessage) error {
	row := newCacheRow(key, data)

	sql := "UPSERT type::record('cache', $id) CONTENT $entry"
	vars := map[string]any{"id": key, "entry": row}

	for attempt := 1; attempt <= 3; attempt++ {
		_, err := surrealdb.Query[[]cacheRow](ctx, s.db, sql, vars)
		if err == nil {
			return nil
		}
		if attempt == 3 {
			return fmt.Errorf("failed to put cache entry %s after retries: %w", key, err)
		}
	}
	return nil
}
