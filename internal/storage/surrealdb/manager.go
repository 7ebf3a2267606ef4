// Package surrealdb implements the storage manager on SurrealDB.
package surrealdb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/surrealdb/surrealdb.go"

	"github.com/bobmcallan/muskunits/internal/common"
	"github.com/bobmcallan/muskunits/internal/interfaces"
)

// Manager implements interfaces.StorageManager using SurrealDB for the
// key-value cache and the local filesystem for raw artifacts.
type Manager struct {
	db       *surrealdb.DB
	logger   *common.Logger
	dataPath string

	cacheStore *CacheStore
}

// NewManager creates a new StorageManager connected to SurrealDB.
func NewManager(logger *common.Logger, config *common.Config) (*Manager, error) {
	ctx := context.Background()

	db, err := surrealdb.New(config.Storage.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SurrealDB: %w", err)
	}

	if _, err := db.SignIn(ctx, map[string]interface{}{
		"user": config.Storage.Username,
		"pass": config.Storage.Password,
	}); err != nil {
		return nil, fmt.Errorf("failed to sign in to SurrealDB: %w", err)
	}

	if err := db.Use(ctx, config.Storage.Namespace, config.Storage.Database); err != nil {
		return nil, fmt.Errorf("failed to select namespace/database: %w", err)
	}

	// SurrealDB v3 errors on querying tables that were never defined
	if _, err := surrealdb.Query[any](ctx, db, "DEFINE TABLE IF NOT EXISTS cache SCHEMALESS", nil); err != nil {
		return nil, fmt.Errorf("failed to define cache table: %w", err)
	}

	dataPath := config.Storage.DataPath
	if dataPath == "" {
		dataPath = "data"
	}
	if err := os.MkdirAll(dataPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data path: %w", err)
	}

	m := &Manager{
		db:         db,
		logger:     logger,
		dataPath:   dataPath,
		cacheStore: NewCacheStore(db, logger),
	}

	logger.Info().
		Str("address", config.Storage.Address).
		Str("namespace", config.Storage.Namespace).
		Str("database", config.Storage.Database).
		Msg("SurrealDB storage manager initialized")

	return m, nil
}

func (m *Manager) CacheStore() interfaces.CacheStore {
	return m.cacheStore
}

func (m *Manager) DataPath() string {
	return m.dataPath
}

// WriteRaw writes arbitrary binary data under a subdirectory of the
// data path, used for rendered chart artifacts.
func (m *Manager) WriteRaw(subdir, key string, data []byte) error {
	dir := filepath.Join(m.dataPath, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, key)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close(context.Background())
	}
	return nil
}
