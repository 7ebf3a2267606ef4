// Package models defines the data structures shared across MuskUnits
package models

import "time"

// AssetClass identifies which kind of market listing a record came from.
type AssetClass string

const (
	AssetStock  AssetClass = "stock"
	AssetETF    AssetClass = "etf"
	AssetMetal  AssetClass = "metal"
	AssetCrypto AssetClass = "crypto"
)

// AssetRecord is the uniform asset shape all providers normalize into.
// Records are ephemeral, rebuilt on every refresh cycle and never persisted.
//
// Price 0 means the source explicitly reported no data; it is rendered as
// unavailable downstream, never as a zero-valued asset. Country is nil for
// metals (no home market) and LogoRef is set only for crypto listings.
type AssetRecord struct {
	Symbol        string     `json:"symbol"`
	Name          string     `json:"name"`
	Price         float64    `json:"price"`
	MarketCap     float64    `json:"marketCap"`
	ChangePercent float64    `json:"change"`
	Class         AssetClass `json:"type"`
	Country       *string    `json:"country"`
	LogoRef       string     `json:"image,omitempty"`
	Sparkline     []float64  `json:"sparkline,omitempty"`
}

// RankedAsset is an AssetRecord projected into a ranked view.
// Rank is contiguous from 1 over the sorted view and Musks is the
// market cap divided by the reference net worth. Both are recomputed on
// every refresh; rank is a view projection, never a stored identifier.
type RankedAsset struct {
	AssetRecord
	Rank  int     `json:"rank"`
	Musks float64 `json:"musks"`
}

// SourceStatus records the outcome of one provider fetch within a refresh
// cycle. A failed source contributes an empty result and the cycle carries
// on; the distinction between degraded and fully failed is surfaced to
// callers through these entries.
type SourceStatus struct {
	OK       bool   `json:"ok"`
	Count    int    `json:"count"`
	Fallback bool   `json:"fallback,omitempty"` // static snapshot substituted
	Error    string `json:"error,omitempty"`
}

// AssetSnapshot is one complete ranked view of every tracked asset,
// computed against a single reference net worth. Snapshots are immutable
// once built and replaced atomically by the next refresh.
type AssetSnapshot struct {
	MuskNetWorth float64                 `json:"muskNetWorth"`
	Count        int                     `json:"count"`
	TotalMusks   float64                 `json:"totalMusks"`
	Assets       []RankedAsset           `json:"assets"`
	Sources      map[string]SourceStatus `json:"sources"`
	LastUpdated  time.Time               `json:"lastUpdated"`
}

// Degraded returns true when at least one source failed but the snapshot
// still carries data from the ones that succeeded.
func (s *AssetSnapshot) Degraded() bool {
	for _, src := range s.Sources {
		if !src.OK {
			return true
		}
	}
	return false
}
