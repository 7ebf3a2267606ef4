package gold

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/bobmcallan/muskunits/internal/common"
	"github.com/bobmcallan/muskunits/internal/models"
)

// Service projects the on-disk reserves dataset into the served view.
// The dataset is curated and changes quarterly, so Refresh is cheap and
// simply re-reads the file.
type Service struct {
	config common.GoldConfig
	logger *common.Logger

	mu   sync.RWMutex
	view *models.GoldView
}

// NewService creates a gold service reading from the configured dataset.
func NewService(config common.GoldConfig, logger *common.Logger) *Service {
	return &Service{
		config: config,
		logger: logger,
	}
}

// Refresh re-reads the reserves file and rebuilds the view.
func (s *Service) Refresh(ctx context.Context) error {
	raw, err := os.ReadFile(s.config.ReservesFile)
	if err != nil {
		return fmt.Errorf("failed to read gold reserves dataset: %w", err)
	}

	var reserves models.GoldReserves
	if err := json.Unmarshal(raw, &reserves); err != nil {
		return fmt.Errorf("failed to parse gold reserves dataset: %w", err)
	}

	view := buildView(&reserves, s.config.TopCountries)

	s.mu.Lock()
	s.view = view
	s.mu.Unlock()

	s.logger.Info().
		Int("quarters", len(view.Quarters)).
		Int("countries", len(view.Countries)).
		Msg("gold view refreshed")
	return nil
}

// View returns the current projection, or nil before the first refresh.
func (s *Service) View() *models.GoldView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

func buildView(reserves *models.GoldReserves, topN int) *models.GoldView {
	// Dataset country names pass through the alias table so bloc
	// membership lists join on the same spellings as holdings data.
	countries := make(map[string][]*float64, len(reserves.Countries))
	for name, series := range reserves.Countries {
		countries[common.CanonicalCountry(name)] = series
	}

	dates := make([]string, len(reserves.Quarters))
	for i, q := range reserves.Quarters {
		dates[i] = QuarterToDate(q)
	}

	latest := make(map[string]float64, len(countries))
	for name, series := range countries {
		for i := len(series) - 1; i >= 0; i-- {
			if series[i] != nil {
				latest[name] = *series[i]
				break
			}
		}
	}

	names := make([]string, 0, len(latest))
	for name := range latest {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if latest[names[i]] != latest[names[j]] {
			return latest[names[i]] > latest[names[j]]
		}
		return names[i] < names[j]
	})
	if topN > 0 && len(names) > topN {
		names = names[:topN]
	}

	blocTotals := make(map[string][]*float64, len(common.Blocs))
	for bloc := range common.Blocs {
		blocTotals[bloc] = CarryForwardTotals(len(reserves.Quarters), countries, common.BlocMembers(bloc))
	}

	return &models.GoldView{
		Dates:          dates,
		Quarters:       reserves.Quarters,
		Countries:      countries,
		TopCountries:   names,
		LatestHoldings: latest,
		BlocTotals:     blocTotals,
		LastUpdated:    time.Now().UTC(),
	}
}
