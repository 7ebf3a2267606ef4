package debt

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
	cacheKey = "debt"

	historySize = 400

	gdpSeries      = "GDP"
	ratioSeries    = "GFDEGDQ188S"
	interestSeries = "A091RC1Q027SBEA"
)

// Service maintains the debt statistics snapshot from Treasury fiscal
// data and FRED series. All five upstream calls run concurrently; each
// failure is isolated and replaced with an empty contribution, so a
// partial outage degrades the snapshot instead of failing the refresh.
type Service struct {
	fiscal interfaces.FiscalDataClient
	fred   interfaces.FredClient
	cache  interfaces.CacheStore
	logger *common.Logger

	mu       sync.RWMutex
	snapshot *models.DebtSnapshot
}

// NewService creates a debt service. cache may be nil.
func NewService(fiscal interfaces.FiscalDataClient, fred interfaces.FredClient, cache interfaces.CacheStore, logger *common.Logger) *Service {
	return &Service{
		fiscal: fiscal,
		fred:   fred,
		cache:  cache,
		logger: logger,
	}
}

// Refresh fetches all sources and swaps in a new snapshot.
func (s *Service) Refresh(ctx context.Context) error {
	var (
		wg sync.WaitGroup

		current     *models.DebtRecord
		currentErr  error
		history     []models.DebtRecord
		historyErr  error
		gdp         []models.SeriesPoint
		gdpErr      error
		ratio       []models.SeriesPoint
		ratioErr    error
		interest    []models.SeriesPoint
		interestErr error
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		current, currentErr = s.fiscal.GetCurrentDebt(ctx)
	}()
	go func() {
		defer wg.Done()
		history, historyErr = s.fiscal.GetDebtHistory(ctx, historySize)
	}()
	go func() {
		defer wg.Done()
		gdp, gdpErr = s.fred.GetSeries(ctx, gdpSeries)
	}()
	go func() {
		defer wg.Done()
		ratio, ratioErr = s.fred.GetSeries(ctx, ratioSeries)
	}()
	go func() {
		defer wg.Done()
		interest, interestErr = s.fred.GetSeries(ctx, interestSeries)
	}()
	wg.Wait()

	errs := map[string]error{
		"fiscal_current": currentErr,
		"fiscal_history": historyErr,
		"fred_gdp":       gdpErr,
		"fred_ratio":     ratioErr,
		"fred_interest":  interestErr,
	}

	allFailed := true
	sources := make(map[string]models.SourceStatus, len(errs))
	for name, err := range errs {
		status := models.SourceStatus{OK: err == nil}
		if err != nil {
			s.logger.Warn().Err(err).Str("source", name).Msg("debt source failed")
			status.Error = err.Error()
		} else {
			allFailed = false
		}
		sources[name] = status
	}
	if allFailed {
		if s.restoreFromCache(ctx) {
			return nil
		}
		return fmt.Errorf("all debt sources failed")
	}

	if current == nil {
		current = &models.DebtRecord{}
	}

	gdpBillions := latestValue(gdp)
	currentRatio := latestValue(ratio)
	annualInterest := latestValue(interest)
	increase, increasePercent := AnnualIncrease(current, history)

	snapshot := &models.DebtSnapshot{
		Debt:             current,
		GDP:              gdpBillions * 1e9,
		GDPBillions:      gdpBillions,
		RatioHistory:     ratio,
		InterestPayments: annualInterest,
		InterestHistory:  interest,
		Stats:            Stats(current, currentRatio, annualInterest, increase, increasePercent),
		Composition:      Composition(current),
		Growth:           Growth(increase, increasePercent, currentRatio),
		Constants:        models.DebtConstants{Population: usPopulation, Households: usHouseholds},
		Sources:          sources,
		LastUpdated:      time.Now().UTC(),
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	s.logger.Info().
		Float64("total_debt", snapshot.Stats.TotalDebt).
		Bool("degraded", snapshot.Degraded()).
		Msg("debt snapshot refreshed")

	s.writeThrough(ctx, snapshot)
	return nil
}

// Snapshot returns the current debt view, or nil before the first
// successful refresh.
func (s *Service) Snapshot() *models.DebtSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *Service) restoreFromCache(ctx context.Context) bool {
	if s.cache == nil {
		return false
	}
	entry, err := s.cache.Get(ctx, cacheKey)
	if err != nil || entry == nil {
		return false
	}

	var snapshot models.DebtSnapshot
	if err := json.Unmarshal(entry.Data, &snapshot); err != nil {
		s.logger.Warn().Err(err).Msg("cached debt payload is unreadable")
		return false
	}

	s.mu.Lock()
	s.snapshot = &snapshot
	s.mu.Unlock()

	s.logger.Warn().
		Time("written_at", entry.UpdatedAt).
		Msg("all debt sources failed, restored cached snapshot")
	return true
}

func (s *Service) writeThrough(ctx context.Context, snapshot *models.DebtSnapshot) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := s.cache.Put(ctx, cacheKey, data); err != nil {
		s.logger.Warn().Err(err).Msg("debt cache write failed")
	}
}
