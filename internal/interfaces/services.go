package interfaces

import (
	"context"

	"github.com/bobmcallan/muskunits/internal/models"
)

// AssetService maintains the ranked asset snapshot.
type AssetService interface {
	// Refresh fetches every asset class concurrently and swaps in a new
	// snapshot. It returns an error only when all sources failed; a
	// partially degraded snapshot is a success.
	Refresh(ctx context.Context) error

	// Snapshot returns the current snapshot, or nil before the first
	// successful refresh. The returned value is shared and read-only.
	Snapshot() *models.AssetSnapshot
}

// HoldingsService maintains the merged foreign-holders series.
type HoldingsService interface {
	Refresh(ctx context.Context) error
	Snapshot() *models.HoldersSnapshot

	// Total sums holdings for the listed countries at matching dates,
	// ascending. Gaps are not smoothed at this layer; the reporting is
	// dense enough that carry-forward is unnecessary.
	Total(countries []string) []models.TotalPoint
}

// GoldService serves the curated quarterly gold-reserve dataset.
type GoldService interface {
	Refresh(ctx context.Context) error
	View() *models.GoldView
}

// DebtService maintains the national-debt statistics snapshot.
type DebtService interface {
	Refresh(ctx context.Context) error
	Snapshot() *models.DebtSnapshot
}

// QuoteService fetches quotes for the ticker strip, one per symbol,
// isolating per-symbol failures.
type QuoteService interface {
	GetQuotes(ctx context.Context, symbols []string) map[string]models.Quote
}
