package models

import (
	"encoding/json"
	"time"
)

// CacheEntry is one last-known-good payload in the external key-value
// cache. Freshness-window comparison against UpdatedAt is the caller's
// responsibility; the store only records when the value was written.
type CacheEntry struct {
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updated_at"`
}
