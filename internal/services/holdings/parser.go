// Package holdings ingests the Treasury TIC foreign-holders reports.
//
// The TIC data comes in two differently shaped eras. The recent release
// (slt_table5.txt) is a wide table whose header row carries YYYY-MM date
// columns. The historical file (mfhhis01.txt) repeats a two-row header
// block per page: a line of three-letter month abbreviations followed by
// a Country line whose cells are four-digit years, aligned positionally.
// Both parsers reduce their input to country -> (date, value) points;
// merging and ordering happen in merge.go.
package holdings

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/bobmcallan/muskunits/internal/common"
	"github.com/bobmcallan/muskunits/internal/models"
)

var (
	recentDatePattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
	yearPattern       = regexp.MustCompile(`^\d{4}$`)
)

var monthNumbers = map[string]string{
	"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04",
	"May": "05", "Jun": "06", "Jul": "07", "Aug": "08",
	"Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
}

// recentSkipPrefixes marks titles, footnotes, units legends and aggregate
// rows in the recent-era table. Aggregate rows are excluded so bloc and
// world totals are always derived from country rows, never double counted.
var recentSkipPrefixes = []string{
	"Table", "Holdings", "Billions", "Link", "Notes", "Of Which",
	"The data", "overseas", "individual", "(see TIC", "Estimated",
}

var recentSkipExact = map[string]bool{
	"Grand Total": true,
	"All Other":   true,
}

// historicalSkip matches the meta rows of the historical file, which
// interleaves security-type breakdowns and footnotes with country rows.
func historicalSkip(cell string) bool {
	switch cell {
	case "Country", "For. Official", "Treasury Bills", "Grand Total", "All Other":
		return true
	}
	for _, prefix := range []string{"MAJOR", "------", "Of which", "T-Bonds", "Department", "1/", "Estimated"} {
		if strings.HasPrefix(cell, prefix) {
			return true
		}
	}
	return strings.Contains(cell, "billions") ||
		strings.Contains(cell, "HOLDINGS") ||
		strings.Contains(cell, "http") ||
		strings.Contains(cell, "custody")
}

func splitRow(line string) []string {
	parts := strings.Split(line, "\t")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// ParseRecent parses the recent-era wide table. Rows preceding the header
// are skipped entirely; cells that fail numeric parse are dropped rather
// than recorded as zero. An input with no recognizable header yields an
// empty mapping, which the merge step treats as no contribution.
func ParseRecent(text string) models.CountrySeries {
	countries := models.CountrySeries{}
	var headers []string

	for _, line := range strings.Split(text, "\n") {
		parts := splitRow(line)

		if parts[0] == "Country" && len(parts) > 1 && recentDatePattern.MatchString(parts[1]) {
			headers = headers[:0]
			for _, cell := range parts[1:] {
				if recentDatePattern.MatchString(cell) {
					headers = append(headers, cell)
				}
			}
			continue
		}

		if parts[0] == "" || recentSkipExact[parts[0]] {
			continue
		}
		if skipByPrefix(parts[0], recentSkipPrefixes) {
			continue
		}
		if len(headers) == 0 || len(parts) < 2 {
			continue
		}

		name := common.CanonicalCountry(parts[0])
		if len(name) < 2 {
			continue
		}

		values := parts[1:]
		for i := 0; i < len(headers) && i < len(values); i++ {
			val, err := strconv.ParseFloat(values[i], 64)
			if err != nil {
				continue
			}
			countries[name] = append(countries[name], models.HoldingPoint{
				Date:  headers[i],
				Value: val,
			})
		}
	}

	return countries
}

// ParseHistorical parses the historical-era file. The month/year header
// pair repeats per page and re-synchronizes the active date columns each
// time it appears; a run of dashes is the file's explicit no-data token
// and is skipped, never parsed as zero.
func ParseHistorical(text string) models.CountrySeries {
	countries := models.CountrySeries{}
	lines := strings.Split(text, "\n")

	var dateColumns []string // "YYYY-MM" per value column

	for i := 0; i < len(lines); i++ {
		parts := splitRow(lines[i])

		if countMonthTokens(parts) >= 6 {
			if i+1 < len(lines) {
				yearParts := splitRow(lines[i+1])
				if yearParts[0] == "Country" {
					dateColumns = dateColumns[:0]
					for j := 1; j < len(parts) && j < len(yearParts); j++ {
						num, isMonth := monthNumbers[parts[j]]
						if isMonth && yearPattern.MatchString(yearParts[j]) {
							dateColumns = append(dateColumns, yearParts[j]+"-"+num)
						}
					}
				}
			}
			continue
		}

		if parts[0] == "" || historicalSkip(parts[0]) {
			continue
		}
		if len(dateColumns) == 0 || len(parts) < 2 {
			continue
		}

		name := common.CanonicalCountry(parts[0])
		if len(name) < 2 {
			continue
		}

		for j := 0; j < len(dateColumns) && j+1 < len(parts); j++ {
			cell := parts[j+1]
			if cell == "" || strings.HasPrefix(cell, "------") {
				continue
			}
			val, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				continue
			}
			countries[name] = append(countries[name], models.HoldingPoint{
				Date:  dateColumns[j],
				Value: val,
			})
		}
	}

	return countries
}

func skipByPrefix(cell string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(cell, prefix) {
			return true
		}
	}
	return false
}

func countMonthTokens(parts []string) int {
	n := 0
	for _, p := range parts {
		if _, ok := monthNumbers[p]; ok {
			n++
		}
	}
	return n
}
