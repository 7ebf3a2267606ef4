package holdings

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

const cacheKey = "holders"

// Service maintains the merged foreign-holders series. The two report
// eras are fetched concurrently and each failure is isolated: a dead
// source contributes an empty mapping and the merge proceeds with the
// other. Only when both sources fail and no cached payload exists does
// Refresh return an error.
type Service struct {
	tic    interfaces.TICClient
	cache  interfaces.CacheStore
	logger *common.Logger

	mu       sync.RWMutex
	snapshot *models.HoldersSnapshot
}

// NewService creates a holdings service. cache may be nil when no
// external store is configured.
func NewService(tic interfaces.TICClient, cache interfaces.CacheStore, logger *common.Logger) *Service {
	return &Service{
		tic:    tic,
		cache:  cache,
		logger: logger,
	}
}

// Refresh fetches both report eras, parses, merges and swaps in a new
// snapshot. Readers holding the previous snapshot are unaffected; the
// swap is a single pointer write under the lock.
func (s *Service) Refresh(ctx context.Context) error {
	var (
		wg                         sync.WaitGroup
		recentText, historicalText string
		recentErr, historicalErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		recentText, recentErr = s.tic.GetRecentReport(ctx)
	}()
	go func() {
		defer wg.Done()
		historicalText, historicalErr = s.tic.GetHistoricalReport(ctx)
	}()
	wg.Wait()

	sources := make(map[string]SourceResult, 2)
	recent := models.CountrySeries{}
	historical := models.CountrySeries{}

	if recentErr != nil {
		s.logger.Warn().Err(recentErr).Msg("recent holders report fetch failed")
	} else {
		recent = ParseRecent(recentText)
	}
	if historicalErr != nil {
		s.logger.Warn().Err(historicalErr).Msg("historical holders report fetch failed")
	} else {
		historical = ParseHistorical(historicalText)
	}

	sources["recent"] = SourceResult{Err: recentErr, Count: len(recent)}
	sources["historical"] = SourceResult{Err: historicalErr, Count: len(historical)}

	if recentErr != nil && historicalErr != nil {
		if s.restoreFromCache(ctx) {
			return nil
		}
		return fmt.Errorf("all holders sources failed: recent: %v, historical: %v", recentErr, historicalErr)
	}

	snapshot := &models.HoldersSnapshot{
		Data:        Merge(historical, recent),
		Sources:     statusMap(sources),
		LastUpdated: time.Now().UTC(),
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	s.logger.Info().
		Int("countries", len(snapshot.Data)).
		Bool("degraded", recentErr != nil || historicalErr != nil).
		Msg("holders snapshot refreshed")

	s.writeThrough(ctx, snapshot)
	return nil
}

// Snapshot returns the current merged view, or nil before the first
// successful refresh.
func (s *Service) Snapshot() *models.HoldersSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Total sums holdings for the listed countries at exact matching dates.
func (s *Service) Total(countries []string) []models.TotalPoint {
	snap := s.Snapshot()
	if snap == nil {
		return nil
	}
	canonical := make([]string, len(countries))
	for i, c := range countries {
		canonical[i] = common.CanonicalCountry(c)
	}
	return SumAcross(snap.Data, canonical)
}

// SourceResult is one provider fetch outcome before projection to the
// served status map.
type SourceResult struct {
	Err   error
	Count int
}

func statusMap(results map[string]SourceResult) map[string]models.SourceStatus {
	out := make(map[string]models.SourceStatus, len(results))
	for name, r := range results {
		status := models.SourceStatus{OK: r.Err == nil, Count: r.Count}
		if r.Err != nil {
			status.Error = r.Err.Error()
		}
		out[name] = status
	}
	return out
}

func (s *Service) restoreFromCache(ctx context.Context) bool {
	if s.cache == nil {
		return false
	}
	entry, err := s.cache.Get(ctx, cacheKey)
	if err != nil || entry == nil {
		return false
	}

	var snapshot models.HoldersSnapshot
	if err := json.Unmarshal(entry.Data, &snapshot); err != nil {
		s.logger.Warn().Err(err).Msg("cached holders payload is unreadable")
		return false
	}

	s.mu.Lock()
	s.snapshot = &snapshot
	s.mu.Unlock()

	s.logger.Warn().
		Time("written_at", entry.UpdatedAt).
		Msg("all holders sources failed, restored cached snapshot")
	return true
}

func (s *Service) writeThrough(ctx context.Context, snapshot *models.HoldersSnapshot) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := s.cache.Put(ctx, cacheKey, data); err != nil {
		s.logger.Warn().Err(err).Msg("holders cache write failed")
	}
}
