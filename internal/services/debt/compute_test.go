package debt

import (
	"math"
	"testing"

	"github.com/bobmcallan/muskunits/internal/models"
)

func TestComposition(t *testing.T) {
	record := &models.DebtRecord{
		Total:        36e12,
		HeldByPublic: 28e12,
		Intragov:     8e12,
	}

	comp := Composition(record)

	if !comp.ForeignIsEstimate {
		t.Error("foreign share must be labeled as an estimate")
	}
	if comp.ForeignEstimate != 28e12*ForeignShareEstimate {
		t.Errorf("foreign estimate = %v, want fixed share of public debt", comp.ForeignEstimate)
	}
	if got, want := comp.PublicPercent, 28.0/36.0*100; math.Abs(got-want) > 1e-9 {
		t.Errorf("public percent = %v, want %v", got, want)
	}
	if got, want := comp.PrivatePercent, comp.PublicPercent-comp.ForeignPercent; math.Abs(got-want) > 1e-9 {
		t.Errorf("private percent = %v, want public minus foreign = %v", got, want)
	}
}

func TestCompositionZeroTotal(t *testing.T) {
	comp := Composition(&models.DebtRecord{})
	if comp.PublicPercent != 0 || comp.ForeignPercent != 0 {
		t.Errorf("zero total must yield zero percentages, got %+v", comp)
	}
}

func TestAnnualIncrease(t *testing.T) {
	current := &models.DebtRecord{RecordDate: "2025-08-29", Total: 36e12}
	history := []models.DebtRecord{
		{RecordDate: "2025-08-29", Total: 36e12},
		{RecordDate: "2025-02-14", Total: 35e12},
		{RecordDate: "2024-08-28", Total: 34e12},
		{RecordDate: "2024-02-15", Total: 33e12},
	}

	increase, percent := AnnualIncrease(current, history)

	if increase != 2e12 {
		t.Errorf("increase = %v, want difference to the newest record at least a year old", increase)
	}
	if got, want := percent, 2.0/34.0*100; math.Abs(got-want) > 1e-9 {
		t.Errorf("percent = %v, want %v", got, want)
	}
}

func TestAnnualIncreaseShortHistory(t *testing.T) {
	current := &models.DebtRecord{RecordDate: "2025-08-29", Total: 36e12}
	history := []models.DebtRecord{
		{RecordDate: "2025-08-29", Total: 36e12},
		{RecordDate: "2025-06-01", Total: 35.8e12},
	}

	increase, percent := AnnualIncrease(current, history)
	if increase != 0 || percent != 0 {
		t.Errorf("history not reaching back a year must yield zeros, got %v %v", increase, percent)
	}
}

func TestGrowthProjection(t *testing.T) {
	growth := Growth(2e12, 5.0, 120)

	if !growth.GrowingFasterThanEconomy {
		t.Error("5%% debt growth outpaces the economy baseline")
	}
	want := 120 * math.Pow(1+(5.0-gdpGrowthPercent)/100, projectionYears)
	if math.Abs(growth.ProjectedRatio10Y-want) > 1e-9 {
		t.Errorf("projected ratio = %v, want %v", growth.ProjectedRatio10Y, want)
	}

	slow := Growth(1e11, 1.0, 120)
	if slow.GrowingFasterThanEconomy {
		t.Error("1%% debt growth does not outpace the economy baseline")
	}
	if slow.ProjectedRatio10Y >= 120 {
		t.Error("slower-than-economy growth must project a falling ratio")
	}
}

func TestStatsPerCapita(t *testing.T) {
	record := &models.DebtRecord{Total: 36e12}
	stats := Stats(record, 120, 1100, 2e12, 5.0)

	if stats.PerPersonDebt != 36e12/float64(usPopulation) {
		t.Errorf("per person = %v", stats.PerPersonDebt)
	}
	if stats.PerHouseholdDebt != 36e12/float64(usHouseholds) {
		t.Errorf("per household = %v", stats.PerHouseholdDebt)
	}
}
