package server

import (
	"net/http"
	"strconv"

	"github.com/bobmcallan/muskunits/internal/services/holdings"
)

const defaultChartCountries = 6

// handleHoldersChart handles GET /api/holders/chart.png. Renders the
// top holders' series, or the countries named in ?countries=a,b,c. The
// rendered image is also dropped into the data directory so a crashed
// dashboard can still link the last chart.
func (s *Server) handleHoldersChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	snapshot := s.app.HoldingsService.Snapshot()
	if snapshot == nil {
		WriteError(w, http.StatusServiceUnavailable, "Holders data not yet available")
		return
	}

	countries := splitSymbols(r.URL.Query().Get("countries"))
	if len(countries) == 0 {
		n := defaultChartCountries
		if top := r.URL.Query().Get("top"); top != "" {
			if v, err := strconv.Atoi(top); err == nil && v > 0 {
				n = v
			}
		}
		countries = holdings.TopHolders(snapshot.Data, n)
	}

	png, err := holdings.RenderChart(snapshot.Data, countries)
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if s.app.Storage != nil {
		if err := s.app.Storage.WriteRaw("charts", "holders.png", png); err != nil {
			s.logger.Warn().Err(err).Msg("failed to persist holders chart")
		}
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
