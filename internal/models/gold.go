package models

import "time"

// GoldReserves is the curated quarterly reserves dataset as stored on
// disk: an ordered list of quarter labels ("Q4 00" style) and, per
// country, a value slice aligned positionally to those labels. A nil
// entry is a reporting gap: unknown, not zero.
type GoldReserves struct {
	Quarters  []string              `json:"quarters"`
	Countries map[string][]*float64 `json:"countries"`
}

// GoldView is the served projection of the reserves dataset: quarter
// labels converted to month-granular dates, countries ranked by latest
// non-nil holding, and gap-carried totals for each named bloc.
type GoldView struct {
	Dates          []string              `json:"dates"`
	Quarters       []string              `json:"quarters"`
	Countries      map[string][]*float64 `json:"countries"`
	TopCountries   []string              `json:"topCountries"`
	LatestHoldings map[string]float64    `json:"latestHoldings"`
	BlocTotals     map[string][]*float64 `json:"blocTotals"`
	LastUpdated    time.Time             `json:"lastUpdated"`
}
