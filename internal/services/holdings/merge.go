package holdings

import (
	"sort"

	"github.com/bobmcallan/muskunits/internal/models"
)

// Merge unions the historical and recent series into one authoritative
// mapping. On a (country, date) collision the recent value wins: the
// newer release carries Treasury's corrections, so precedence is applied
// explicitly by seeding the date map from historical and overwriting with
// recent. A country present in only one input passes through unchanged.
// Each output series is sorted ascending by date with no duplicates.
func Merge(historical, recent models.CountrySeries) models.CountrySeries {
	merged := models.CountrySeries{}

	for country := range historical {
		merged[country] = nil
	}
	for country := range recent {
		merged[country] = nil
	}

	for country := range merged {
		dateMap := make(map[string]float64)
		for _, point := range historical[country] {
			dateMap[point.Date] = point.Value
		}
		for _, point := range recent[country] {
			dateMap[point.Date] = point.Value
		}

		series := make([]models.HoldingPoint, 0, len(dateMap))
		for date, value := range dateMap {
			series = append(series, models.HoldingPoint{Date: date, Value: value})
		}
		sort.Slice(series, func(i, j int) bool {
			return series[i].Date < series[j].Date
		})
		merged[country] = series
	}

	return merged
}

// SumAcross sums holdings across the listed countries at exact matching
// dates, ascending. There is no carry-forward here: TIC reporting is
// monthly and dense, so a missing month is left missing rather than
// smoothed.
func SumAcross(data models.CountrySeries, countries []string) []models.TotalPoint {
	totals := make(map[string]float64)

	for _, country := range countries {
		for _, point := range data[country] {
			totals[point.Date] += point.Value
		}
	}

	out := make([]models.TotalPoint, 0, len(totals))
	for date, value := range totals {
		out = append(out, models.TotalPoint{Date: date, Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}
