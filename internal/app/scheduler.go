package app

import (
	"context"
	"time"

	"github.com/bobmcallan/muskunits/internal/common"
)

// refreshTimeout bounds one component's refresh cycle. TIC documents
// are the slowest source and still finish well inside this.
const refreshTimeout = 2 * time.Minute

// StartScheduler launches the background refresh loops, one per data
// component so a slow source never delays the others' cadence. Each
// component is refreshed once immediately so the API serves data as
// soon as a source responds.
func (a *App) StartScheduler() {
	ctx, cancel := context.WithCancel(context.Background())
	a.schedulerCancel = cancel

	components := []struct {
		name     string
		interval time.Duration
		refresh  func(context.Context) error
	}{
		{"assets", a.Config.Reference.GetRefreshInterval(), a.AssetService.Refresh},
		{"debt", common.FreshnessDebt, a.DebtService.Refresh},
		{"holders", common.FreshnessHoldings, a.HoldingsService.Refresh},
		{"gold", common.FreshnessGold, a.GoldService.Refresh},
	}

	for _, c := range components {
		go a.runRefreshLoop(ctx, c.name, c.interval, c.refresh)
	}
}

func (a *App) runRefreshLoop(ctx context.Context, name string, interval time.Duration, refresh func(context.Context) error) {
	a.refreshOnce(ctx, name, refresh)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.Logger.Info().Str("component", name).Msg("refresh loop stopped")
			return
		case <-ticker.C:
			a.refreshOnce(ctx, name, refresh)
		}
	}
}

func (a *App) refreshOnce(ctx context.Context, name string, refresh func(context.Context) error) {
	start := time.Now()
	refreshCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	if err := refresh(refreshCtx); err != nil {
		a.Logger.Warn().Err(err).Str("component", name).Msg("refresh failed")
		return
	}
	a.Logger.Info().
		Str("component", name).
		Dur("elapsed", time.Since(start)).
		Msg("refresh complete")
}
