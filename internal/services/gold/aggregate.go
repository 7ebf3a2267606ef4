// Package gold serves the curated quarterly gold-reserve dataset.
package gold

import (
	"fmt"
	"regexp"
	"strconv"
)

var quarterPattern = regexp.MustCompile(`Q(\d)\s*(\d{2})`)

// QuarterToDate converts a "Q4 00" style label to the first day of the
// quarter's closing month. Two-digit years 90 and up are read as 19xx.
// Unrecognized labels map to an empty string.
func QuarterToDate(label string) string {
	match := quarterPattern.FindStringSubmatch(label)
	if match == nil {
		return ""
	}
	quarter, _ := strconv.Atoi(match[1])
	year, _ := strconv.Atoi(match[2])
	if quarter < 1 || quarter > 4 {
		return ""
	}

	fullYear := 2000 + year
	if year >= 90 {
		fullYear = 1900 + year
	}
	return fmt.Sprintf("%d-%02d-01", fullYear, quarter*3)
}

// CarryForwardTotals sums a fixed country set per period, carrying each
// country's last known value across reporting gaps. National reporting
// cadences are irregular and asynchronous; zero-filling a delayed report
// would put artificial dips in the aggregate whenever one country lags,
// so gaps reuse the last observed value instead. A country that has
// never reported by a given period contributes nothing, and a period
// total is nil only while no member has ever reported.
func CarryForwardTotals(periodCount int, countries map[string][]*float64, members []string) []*float64 {
	totals := make([]*float64, periodCount)
	lastKnown := make(map[string]float64, len(members))

	for i := 0; i < periodCount; i++ {
		sum := 0.0
		hasData := false

		for _, member := range members {
			series := countries[member]
			var value *float64
			if i < len(series) {
				value = series[i]
			}

			switch {
			case value != nil:
				lastKnown[member] = *value
				sum += *value
				hasData = true
			default:
				if carried, ok := lastKnown[member]; ok {
					sum += carried
					hasData = true
				}
			}
		}

		if hasData {
			total := sum
			totals[i] = &total
		}
	}

	return totals
}
