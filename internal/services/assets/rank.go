package assets

import (
	"sort"

	"github.com/bobmcallan/muskunits/internal/models"
)

// TopN is the serving window for the ranked view.
const TopN = 100

// Rank sorts the combined records descending by market cap, truncates to
// topN and assigns contiguous ranks from 1 plus the per-record musk
// value. A missing market cap sorts as 0 but keeps its real value in the
// output. Ties break by symbol ascending so repeated runs over the same
// input produce identical output. Returns the ranked view and the sum of
// musk values across it.
func Rank(records []models.AssetRecord, netWorth float64, topN int) ([]models.RankedAsset, float64) {
	sorted := make([]models.AssetRecord, len(records))
	copy(sorted, records)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].MarketCap != sorted[j].MarketCap {
			return sorted[i].MarketCap > sorted[j].MarketCap
		}
		return sorted[i].Symbol < sorted[j].Symbol
	})

	if topN > 0 && len(sorted) > topN {
		sorted = sorted[:topN]
	}

	ranked := make([]models.RankedAsset, len(sorted))
	total := 0.0
	for i, record := range sorted {
		musks := record.MarketCap / netWorth
		ranked[i] = models.RankedAsset{
			AssetRecord: record,
			Rank:        i + 1,
			Musks:       musks,
		}
		total += musks
	}

	return ranked, total
}
