package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/bobmcallan/muskunits/internal/common"
	"github.com/bobmcallan/muskunits/internal/interfaces"
	"github.com/bobmcallan/muskunits/internal/models"
)

const (
	cacheKey = "assets"

	// A bulk fetch returning fewer rows than this is treated as
	// throttling and the static snapshot is substituted.
	minLiveListings = 10

	cryptoLimit = 50
	stockLimit  = 50
)

// Service maintains the ranked asset snapshot. Each asset class is
// fetched concurrently and independently; a dead or throttled live
// source is replaced by the bundled static snapshot (stocks, metals) or
// an empty contribution (crypto) and the refresh proceeds as a degraded
// success. Only a missing reference net worth or a fully empty result
// fails the refresh.
type Service struct {
	crypto   interfaces.CryptoClient
	scraper  interfaces.MarketCapClient
	cache    interfaces.CacheStore
	netWorth float64
	logger   *common.Logger

	mu       sync.RWMutex
	snapshot *models.AssetSnapshot
}

// NewService creates an asset service. scraper and cache may be nil.
func NewService(crypto interfaces.CryptoClient, scraper interfaces.MarketCapClient, cache interfaces.CacheStore, netWorth float64, logger *common.Logger) *Service {
	return &Service{
		crypto:   crypto,
		scraper:  scraper,
		cache:    cache,
		netWorth: netWorth,
		logger:   logger,
	}
}

// Refresh rebuilds the snapshot from all asset classes. Every ratio in
// one snapshot is computed against the same net worth value, captured
// once at the start of the pass.
func (s *Service) Refresh(ctx context.Context) error {
	netWorth := s.netWorth
	if netWorth <= 0 {
		return fmt.Errorf("reference net worth is not configured")
	}

	var (
		wg sync.WaitGroup

		cryptoMarkets []models.CoinMarket
		cryptoErr     error
		companies     []models.ScrapedListing
		companiesErr  error
		metals        []models.ScrapedListing
		metalsErr     error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		cryptoMarkets, cryptoErr = s.crypto.GetMarkets(ctx, cryptoLimit)
	}()

	if s.scraper != nil {
		wg.Add(2)
		go func() {
			defer wg.Done()
			companies, companiesErr = s.scraper.ScrapeCompanies(ctx, stockLimit)
		}()
		go func() {
			defer wg.Done()
			metals, metalsErr = s.scraper.ScrapeMetals(ctx)
		}()
	}
	wg.Wait()

	sources := make(map[string]models.SourceStatus, 4)
	var records []models.AssetRecord

	stocks, stockStatus := s.liveOrStatic("stocks", companies, companiesErr, models.AssetStock, StaticStocks)
	records = append(records, stocks...)
	sources["stocks"] = stockStatus

	metalRecords, metalStatus := s.liveOrStatic("metals", metals, metalsErr, models.AssetMetal, StaticMetals)
	records = append(records, metalRecords...)
	sources["metals"] = metalStatus

	etfs := StaticETFs()
	records = append(records, etfs...)
	sources["etfs"] = models.SourceStatus{OK: true, Count: len(etfs), Fallback: true}

	if cryptoErr != nil {
		s.logger.Warn().Err(cryptoErr).Msg("crypto source failed, continuing without it")
		sources["crypto"] = models.SourceStatus{OK: false, Error: cryptoErr.Error()}
	} else {
		cryptoRecords := NormalizeCrypto(cryptoMarkets)
		records = append(records, cryptoRecords...)
		sources["crypto"] = models.SourceStatus{OK: true, Count: len(cryptoRecords)}
	}

	if len(records) == 0 {
		return fmt.Errorf("all asset sources failed")
	}

	ranked, totalMusks := Rank(records, netWorth, TopN)

	snapshot := &models.AssetSnapshot{
		MuskNetWorth: netWorth,
		Count:        len(ranked),
		TotalMusks:   totalMusks,
		Assets:       ranked,
		Sources:      sources,
		LastUpdated:  time.Now().UTC(),
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	s.logger.Info().
		Int("count", snapshot.Count).
		Float64("total_musks", snapshot.TotalMusks).
		Bool("degraded", snapshot.Degraded()).
		Msg("asset snapshot refreshed")

	s.writeThrough(ctx, snapshot)
	return nil
}

// Snapshot returns the current ranked view, or nil before the first
// successful refresh.
func (s *Service) Snapshot() *models.AssetSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// liveOrStatic picks scraped rows when they look healthy and the static
// snapshot otherwise. No scraper configured counts as a clean fallback.
func (s *Service) liveOrStatic(name string, listings []models.ScrapedListing, err error, class models.AssetClass, static func() []models.AssetRecord) ([]models.AssetRecord, models.SourceStatus) {
	if s.scraper == nil {
		records := static()
		return records, models.SourceStatus{OK: true, Count: len(records), Fallback: true}
	}

	if err != nil {
		s.logger.Warn().Err(err).Str("source", name).Msg("scrape failed, substituting static snapshot")
		records := static()
		return records, models.SourceStatus{OK: false, Count: len(records), Fallback: true, Error: err.Error()}
	}

	min := minLiveListings
	if class == models.AssetMetal {
		min = 1
	}
	if len(listings) < min {
		s.logger.Warn().Str("source", name).Int("rows", len(listings)).Msg("scrape looks throttled, substituting static snapshot")
		records := static()
		return records, models.SourceStatus{
			OK:       false,
			Count:    len(records),
			Fallback: true,
			Error:    fmt.Sprintf("suspected throttling: %d rows", len(listings)),
		}
	}

	return NormalizeListings(listings, class), models.SourceStatus{OK: true, Count: len(listings)}
}

func (s *Service) writeThrough(ctx context.Context, snapshot *models.AssetSnapshot) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := s.cache.Put(ctx, cacheKey, data); err != nil {
		s.logger.Warn().Err(err).Msg("asset cache write failed")
	}
}
