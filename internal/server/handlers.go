package server

import (
	"net/http"

	"github.com/bobmcallan/muskunits/internal/common"
	"github.com/bobmcallan/muskunits/internal/models"
)

// defaultQuoteSymbols feeds the ticker strip when the caller does not
// pick its own: gold, silver, copper, S&P 500, crude oil, 10-year yield.
const defaultQuoteSymbols = "GC=F,SI=F,HG=F,^GSPC,CL=F,^TNX"

type assetsResponse struct {
	Success bool `json:"success"`
	*models.AssetSnapshot
}

// handleAssets handles GET /api/assets.
func (s *Server) handleAssets(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	snapshot := s.app.AssetService.Snapshot()
	if snapshot == nil {
		WriteError(w, http.StatusServiceUnavailable, "Asset data not yet available")
		return
	}

	WriteJSON(w, http.StatusOK, assetsResponse{Success: true, AssetSnapshot: snapshot})
}

type holdersResponse struct {
	Success bool `json:"success"`
	*models.HoldersSnapshot
}

// handleHolders handles GET /api/holders.
func (s *Server) handleHolders(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	snapshot := s.app.HoldingsService.Snapshot()
	if snapshot == nil {
		WriteError(w, http.StatusServiceUnavailable, "Holders data not yet available")
		return
	}

	WriteJSON(w, http.StatusOK, holdersResponse{Success: true, HoldersSnapshot: snapshot})
}

// handleHoldersTotal handles GET /api/holders/total. The country set
// comes from ?countries=a,b,c or ?bloc=<name>; with neither, every
// country in the snapshot contributes.
func (s *Server) handleHoldersTotal(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	snapshot := s.app.HoldingsService.Snapshot()
	if snapshot == nil {
		WriteError(w, http.StatusServiceUnavailable, "Holders data not yet available")
		return
	}

	var countries []string
	if bloc := r.URL.Query().Get("bloc"); bloc != "" {
		countries = common.BlocMembers(bloc)
		if countries == nil {
			WriteError(w, http.StatusBadRequest, "Unknown bloc: "+bloc)
			return
		}
	} else if list := r.URL.Query().Get("countries"); list != "" {
		countries = splitSymbols(list)
	} else {
		for country := range snapshot.Data {
			countries = append(countries, country)
		}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"countries": len(countries),
		"total":     s.app.HoldingsService.Total(countries),
	})
}

// handleGold handles GET /api/gold.
func (s *Server) handleGold(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	view := s.app.GoldService.View()
	if view == nil {
		WriteError(w, http.StatusServiceUnavailable, "Gold data not yet available")
		return
	}

	WriteJSON(w, http.StatusOK, view)
}

type debtResponse struct {
	Success bool `json:"success"`
	*models.DebtSnapshot
}

// handleDebt handles GET /api/debt.
func (s *Server) handleDebt(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	snapshot := s.app.DebtService.Snapshot()
	if snapshot == nil {
		WriteError(w, http.StatusServiceUnavailable, "Debt data not yet available")
		return
	}

	WriteJSON(w, http.StatusOK, debtResponse{Success: true, DebtSnapshot: snapshot})
}

// handleQuotes handles GET /api/quotes?symbols=a,b,c.
func (s *Server) handleQuotes(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbols := r.URL.Query().Get("symbols")
	if symbols == "" {
		symbols = defaultQuoteSymbols
	}

	w.Header().Set("Cache-Control", "s-maxage=60, stale-while-revalidate=30")

	quotes := s.app.QuoteService.GetQuotes(r.Context(), splitSymbols(symbols))
	WriteJSON(w, http.StatusOK, map[string]interface{}{"quotes": quotes})
}
