// Package interfaces defines service contracts for MuskUnits
package interfaces

import (
	"context"

	"github.com/bobmcallan/muskunits/internal/models"
)

// CryptoClient retrieves crypto market listings ordered by market cap.
type CryptoClient interface {
	// GetMarkets fetches up to limit listings. Implementations batch
	// page requests under a rate cap; a short result may indicate
	// upstream throttling, which callers detect by count.
	GetMarkets(ctx context.Context, limit int) ([]models.CoinMarket, error)
}

// FiscalDataClient retrieves Treasury fiscal-service records.
type FiscalDataClient interface {
	// GetCurrentDebt returns the most recent debt-to-the-penny record.
	GetCurrentDebt(ctx context.Context) (*models.DebtRecord, error)

	// GetDebtHistory returns up to size records, newest first.
	GetDebtHistory(ctx context.Context, size int) ([]models.DebtRecord, error)
}

// FredClient retrieves FRED CSV time series parsed to month-granular points.
type FredClient interface {
	GetSeries(ctx context.Context, seriesID string) ([]models.SeriesPoint, error)
}

// TICClient retrieves the raw Treasury TIC holdings reports. Both are
// plain text; all parsing happens in the holdings service.
type TICClient interface {
	GetRecentReport(ctx context.Context) (string, error)
	GetHistoricalReport(ctx context.Context) (string, error)
}

// MarketCapClient scrapes companiesmarketcap.com. Strictly best-effort:
// failures and unparseable markup yield empty results, never errors that
// abort a refresh cycle.
type MarketCapClient interface {
	ScrapeCompanies(ctx context.Context, limit int) ([]models.ScrapedListing, error)
	ScrapeMetals(ctx context.Context) ([]models.ScrapedListing, error)
}

// QuoteClient retrieves single-symbol quotes for the ticker strip.
type QuoteClient interface {
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)
}
