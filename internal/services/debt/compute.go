// Package debt builds the national-debt statistics snapshot.
package debt

import (
	"math"
	"time"

	"github.com/bobmcallan/muskunits/internal/models"
)

// Fixed divisors for per-capita figures, updated yearly.
const (
	usPopulation int64 = 335_000_000
	usHouseholds int64 = 131_000_000
)

// ForeignShareEstimate is the assumed foreign share of public debt. It
// is a published approximation, deliberately not reconciled against the
// TIC country-level series; reconciling would change the reported figure.
const ForeignShareEstimate = 0.24

// gdpGrowthPercent is the typical long-run GDP growth used for the
// growing-faster-than-economy comparison and the 10-year projection.
const gdpGrowthPercent = 2.5

const projectionYears = 10

// Composition breaks the current record into holder categories.
func Composition(record *models.DebtRecord) models.DebtComposition {
	comp := models.DebtComposition{
		PublicDebt:        record.HeldByPublic,
		IntragovDebt:      record.Intragov,
		ForeignEstimate:   record.HeldByPublic * ForeignShareEstimate,
		ForeignIsEstimate: true,
	}
	if record.Total > 0 {
		comp.PublicPercent = record.HeldByPublic / record.Total * 100
		comp.IntragovPercent = record.Intragov / record.Total * 100
		comp.ForeignPercent = comp.ForeignEstimate / record.Total * 100
		comp.PrivatePercent = comp.PublicPercent - comp.ForeignPercent
	}
	return comp
}

// AnnualIncrease compares the current total to the newest record at
// least one year older. History is newest first; a history too short to
// reach back a year yields zeros.
func AnnualIncrease(current *models.DebtRecord, history []models.DebtRecord) (increase, percent float64) {
	if len(history) == 0 {
		return 0, 0
	}

	currentDate, err := time.Parse("2006-01-02", history[0].RecordDate)
	if err != nil {
		return 0, 0
	}
	oneYearAgo := currentDate.AddDate(-1, 0, 0)

	for _, record := range history {
		date, err := time.Parse("2006-01-02", record.RecordDate)
		if err != nil {
			continue
		}
		if !date.After(oneYearAgo) {
			if record.Total > 0 {
				increase = current.Total - record.Total
				percent = increase / record.Total * 100
			}
			return increase, percent
		}
	}
	return 0, 0
}

// Growth projects the debt-to-GDP ratio forward assuming the current
// growth differential holds.
func Growth(increase, increasePercent, currentRatio float64) models.DebtGrowth {
	return models.DebtGrowth{
		AnnualIncrease:           increase,
		AnnualIncreasePercent:    increasePercent,
		GrowingFasterThanEconomy: increasePercent > gdpGrowthPercent,
		ProjectedRatio10Y:        currentRatio * math.Pow(1+(increasePercent-gdpGrowthPercent)/100, projectionYears),
	}
}

// Stats assembles the headline figures.
func Stats(record *models.DebtRecord, currentRatio, annualInterest, increase, increasePercent float64) models.DebtStats {
	return models.DebtStats{
		TotalDebt:             record.Total,
		DebtToGDPRatio:        currentRatio,
		PerPersonDebt:         record.Total / float64(usPopulation),
		PerHouseholdDebt:      record.Total / float64(usHouseholds),
		AnnualInterest:        annualInterest,
		AnnualIncrease:        increase,
		AnnualIncreasePercent: increasePercent,
	}
}

func latestValue(series []models.SeriesPoint) float64 {
	if len(series) == 0 {
		return 0
	}
	return series[len(series)-1].Value
}
