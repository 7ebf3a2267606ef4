package server

import (
	"net/http"
	"runtime"
	"time"

	"github.com/bobmcallan/muskunits/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)
	mux.HandleFunc("/api/shutdown", s.handleShutdown)

	// Data
	mux.HandleFunc("/api/assets", s.handleAssets)
	mux.HandleFunc("/api/quotes", s.handleQuotes)
	mux.HandleFunc("/api/debt", s.handleDebt)
	mux.HandleFunc("/api/holders", s.handleHolders)
	mux.HandleFunc("/api/holders/total", s.handleHoldersTotal)
	mux.HandleFunc("/api/holders/chart.png", s.handleHoldersChart)
	mux.HandleFunc("/api/gold", s.handleGold)
}

// handleHealth handles GET /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	status := map[string]interface{}{
		"status":  "ok",
		"uptime":  time.Since(s.app.StartupTime).Round(time.Second).String(),
		"version": common.GetVersion(),
	}

	// A health probe should see whether the dashboard has data to show.
	snapshots := map[string]bool{
		"assets":  s.app.AssetService.Snapshot() != nil,
		"holders": s.app.HoldingsService.Snapshot() != nil,
		"debt":    s.app.DebtService.Snapshot() != nil,
		"gold":    s.app.GoldService.View() != nil,
	}
	status["snapshots"] = snapshots

	WriteJSON(w, http.StatusOK, status)
}

// handleVersion handles GET /api/version.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"version":    common.GetVersion(),
		"build":      common.GetBuild(),
		"git_commit": common.GetGitCommit(),
		"go_version": runtime.Version(),
	})
}

// handleConfig handles GET /api/config. Secrets never leave the process;
// only display-relevant settings are exposed.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	cfg := s.app.Config
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":      cfg.Environment,
		"net_worth":        cfg.Reference.NetWorth,
		"refresh_interval": cfg.Reference.RefreshInterval,
		"cache_enabled":    cfg.Storage.Address != "",
	})
}

// handleShutdown handles POST /api/shutdown (dev mode only).
func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Shutdown endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Shutdown requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Shutting down gracefully...\n"))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	if s.shutdownChan != nil {
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.shutdownChan <- struct{}{}
		}()
	}
}
