package models

import "time"

// DebtRecord is the Treasury "debt to the penny" record, parsed to floats.
type DebtRecord struct {
	RecordDate   string  `json:"record_date"`
	Total        float64 `json:"tot_pub_debt_out_amt"`
	HeldByPublic float64 `json:"debt_held_public_amt"`
	Intragov     float64 `json:"intragov_hold_amt"`
}

// SeriesPoint is one observation of a FRED time series, with the date
// truncated to calendar-month granularity ("YYYY-MM").
type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// DebtStats summarizes the headline numbers for the debt view.
type DebtStats struct {
	TotalDebt             float64 `json:"totalDebt"`
	DebtToGDPRatio        float64 `json:"debtToGdpRatio"`
	PerPersonDebt         float64 `json:"perPersonDebt"`
	PerHouseholdDebt      float64 `json:"perHouseholdDebt"`
	AnnualInterest        float64 `json:"annualInterest"`
	AnnualIncrease        float64 `json:"annualIncrease"`
	AnnualIncreasePercent float64 `json:"annualIncreasePercent"`
}

// DebtComposition breaks total debt into holder categories. The foreign
// share is a fixed estimated ratio of public debt, labeled as such via
// ForeignIsEstimate. It is intentionally NOT reconciled against the TIC
// country-level totals, which would change the reported figure.
type DebtComposition struct {
	PublicDebt        float64 `json:"publicDebt"`
	PublicPercent     float64 `json:"publicPercent"`
	IntragovDebt      float64 `json:"intragovDebt"`
	IntragovPercent   float64 `json:"intragovPercent"`
	ForeignEstimate   float64 `json:"foreignEstimate"`
	ForeignPercent    float64 `json:"foreignPercent"`
	PrivatePercent    float64 `json:"privatePercent"`
	ForeignIsEstimate bool    `json:"foreignIsEstimate"`
}

// DebtGrowth compares debt growth to economic growth.
type DebtGrowth struct {
	AnnualIncrease           float64 `json:"annualIncrease"`
	AnnualIncreasePercent    float64 `json:"annualIncreasePercent"`
	GrowingFasterThanEconomy bool    `json:"debtGrowingFasterThanEconomy"`
	ProjectedRatio10Y        float64 `json:"projectedRatio10Y"`
}

// DebtConstants are the fixed divisors used for per-capita figures.
type DebtConstants struct {
	Population int64 `json:"population"`
	Households int64 `json:"households"`
}

// DebtSnapshot is the complete served debt view, replaced atomically on
// each successful refresh.
type DebtSnapshot struct {
	Debt             *DebtRecord             `json:"debt"`
	GDP              float64                 `json:"gdp"`
	GDPBillions      float64                 `json:"gdpBillions"`
	RatioHistory     []SeriesPoint           `json:"ratioHistory"`
	InterestPayments float64                 `json:"interestPayments"`
	InterestHistory  []SeriesPoint           `json:"interestHistory"`
	Stats            DebtStats               `json:"stats"`
	Composition      DebtComposition         `json:"composition"`
	Growth           DebtGrowth              `json:"growth"`
	Constants        DebtConstants           `json:"constants"`
	Sources          map[string]SourceStatus `json:"sources"`
	LastUpdated      time.Time               `json:"lastUpdated"`
}

// Degraded returns true when at least one source failed this cycle.
func (s *DebtSnapshot) Degraded() bool {
	for _, src := range s.Sources {
		if !src.OK {
			return true
		}
	}
	return false
}
