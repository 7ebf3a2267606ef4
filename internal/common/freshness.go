// Package common provides shared utilities for MuskUnits
package common

import "time"

// Freshness TTLs for data components
const (
	FreshnessAssets   = 5 * time.Minute       // live market snapshot
	FreshnessQuotes   = 1 * time.Minute       // ticker strip prices
	FreshnessDebt     = 6 * time.Hour         // fiscal data updates daily
	FreshnessHoldings = 24 * time.Hour        // TIC publishes monthly
	FreshnessGold     = 7 * 24 * time.Hour    // quarterly dataset, curated
)

// IsFresh returns true if the given timestamp is within the TTL
func IsFresh(updated time.Time, ttl time.Duration) bool {
	if updated.IsZero() {
		return false
	}
	return time.Since(updated) < ttl
}
