package models

import "time"

// HoldingPoint is one country's reported Treasury holding for one
// reporting month. Date is calendar-month granularity, "YYYY-MM".
type HoldingPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// CountrySeries maps canonical country names to chronological holding
// points. After merge, each series is strictly ascending by date with no
// duplicates.
type CountrySeries map[string][]HoldingPoint

// HoldersSnapshot is the merged view of both TIC report eras, replaced
// atomically on each successful refresh.
type HoldersSnapshot struct {
	Data        CountrySeries           `json:"data"`
	Sources     map[string]SourceStatus `json:"sources"`
	LastUpdated time.Time               `json:"lastUpdated"`
}

// Degraded returns true when at least one report era failed to load.
func (s *HoldersSnapshot) Degraded() bool {
	for _, src := range s.Sources {
		if !src.OK {
			return true
		}
	}
	return false
}

// TotalPoint is an aggregate value across countries for one date.
type TotalPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
