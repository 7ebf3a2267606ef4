package assets

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bobmcallan/muskunits/internal/models"
)

func asset(symbol string, marketCap float64) models.AssetRecord {
	return models.AssetRecord{Symbol: symbol, Name: symbol, MarketCap: marketCap, Class: models.AssetStock}
}

func TestRankOrderAndMusks(t *testing.T) {
	records := []models.AssetRecord{
		asset("B", 50),
		asset("A", 200),
		asset("C", 10),
	}

	ranked, total := Rank(records, 100, TopN)

	wantCaps := []float64{200, 50, 10}
	wantMusks := []float64{2.0, 0.5, 0.1}
	for i := range ranked {
		if ranked[i].MarketCap != wantCaps[i] {
			t.Errorf("position %d marketCap = %v, want %v", i, ranked[i].MarketCap, wantCaps[i])
		}
		if ranked[i].Rank != i+1 {
			t.Errorf("position %d rank = %d, want contiguous from 1", i, ranked[i].Rank)
		}
		if ranked[i].Musks != wantMusks[i] {
			t.Errorf("position %d musks = %v, want %v", i, ranked[i].Musks, wantMusks[i])
		}
	}
	if total != 2.6 {
		t.Errorf("total musks = %v, want 2.6", total)
	}
}

func TestRankTruncatesAndKeepsContiguousRanks(t *testing.T) {
	var records []models.AssetRecord
	for i := 0; i < 150; i++ {
		records = append(records, asset(string(rune('A'+i%26))+string(rune('A'+i/26)), float64(1000-i)))
	}

	ranked, _ := Rank(records, 100, TopN)

	if len(ranked) != TopN {
		t.Fatalf("expected truncation to %d, got %d", TopN, len(ranked))
	}
	for i, r := range ranked {
		if r.Rank != i+1 {
			t.Fatalf("rank at %d = %d, ranks must stay contiguous after truncation", i, r.Rank)
		}
	}
}

func TestRankMissingCapSortsLastButStaysZero(t *testing.T) {
	records := []models.AssetRecord{
		asset("NODATA", 0),
		asset("REAL", 100),
	}

	ranked, _ := Rank(records, 100, TopN)

	if ranked[0].Symbol != "REAL" {
		t.Error("missing market cap must sort below real values")
	}
	if ranked[1].MarketCap != 0 || ranked[1].Musks != 0 {
		t.Errorf("missing cap must pass through as-is: %+v", ranked[1])
	}
}

func TestRankDeterministicOnEqualCaps(t *testing.T) {
	records := []models.AssetRecord{
		asset("ZZZ", 100),
		asset("AAA", 100),
		asset("MMM", 100),
	}

	first, _ := Rank(records, 100, TopN)

	if first[0].Symbol != "AAA" || first[1].Symbol != "MMM" || first[2].Symbol != "ZZZ" {
		t.Fatalf("equal caps must break by symbol ascending, got %s %s %s",
			first[0].Symbol, first[1].Symbol, first[2].Symbol)
	}

	// Re-running over an unchanged input must serialize identically.
	second, _ := Rank(records, 100, TopN)
	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if !bytes.Equal(a, b) {
		t.Error("repeated ranking of the same input produced different output")
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	records := []models.AssetRecord{asset("B", 1), asset("A", 2)}
	Rank(records, 100, TopN)
	if records[0].Symbol != "B" {
		t.Error("input slice order must be preserved")
	}
}
