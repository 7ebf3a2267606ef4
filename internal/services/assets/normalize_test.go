package assets

import (
	"testing"

	"github.com/bobmcallan/muskunits/internal/models"
)

func TestNormalizeListingsDefaultsCountry(t *testing.T) {
	records := NormalizeListings([]models.ScrapedListing{
		{Symbol: "NVDA", Name: "NVIDIA", Price: 190, MarketCap: 4626e9, ChangePercent: 2.5},
	}, models.AssetStock)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.Class != models.AssetStock {
		t.Errorf("class = %v, want stock", r.Class)
	}
	if r.Country == nil || *r.Country != "USA" {
		t.Errorf("country = %v, want home-market default", r.Country)
	}
}

func TestNormalizeListingsMetalsHaveNoCountry(t *testing.T) {
	records := NormalizeListings([]models.ScrapedListing{
		{Symbol: "GOLD", Name: "Gold", MarketCap: 35295e9},
	}, models.AssetMetal)

	if records[0].Country != nil {
		t.Errorf("metal country = %v, want nil", *records[0].Country)
	}
}

func TestNormalizeCrypto(t *testing.T) {
	records := NormalizeCrypto([]models.CoinMarket{
		{
			Symbol:       "btc",
			Name:         "Bitcoin",
			CurrentPrice: 97000,
			MarketCap:    1.9e12,
			Change24h:    -1.2,
			Image:        "https://example.com/btc.png",
			Sparkline7d:  []float64{96000, 97000},
		},
	})

	r := records[0]
	if r.Symbol != "BTC" {
		t.Errorf("symbol = %q, want upper-cased", r.Symbol)
	}
	if r.Class != models.AssetCrypto {
		t.Errorf("class = %v, want crypto", r.Class)
	}
	if r.Country != nil {
		t.Error("crypto must carry no country")
	}
	if r.LogoRef == "" {
		t.Error("logo reference must be carried through")
	}
	if len(r.Sparkline) != 2 {
		t.Errorf("sparkline length = %d, want 2", len(r.Sparkline))
	}
}

func TestStaticSnapshotsNormalize(t *testing.T) {
	stocks := StaticStocks()
	if len(stocks) == 0 {
		t.Fatal("static stock snapshot is empty")
	}
	for _, s := range stocks {
		if s.MarketCap <= 0 {
			t.Errorf("%s: static market cap must be positive", s.Symbol)
		}
		if s.Country == nil {
			t.Errorf("%s: stock country must never be nil", s.Symbol)
		}
	}

	var aramco *models.AssetRecord
	for i := range stocks {
		if stocks[i].Symbol == "2222.SR" {
			aramco = &stocks[i]
		}
	}
	if aramco == nil || *aramco.Country != "Saudi Arabia" {
		t.Error("explicit listing country must survive normalization")
	}

	for _, m := range StaticMetals() {
		if m.Country != nil {
			t.Errorf("%s: metal country must be nil", m.Symbol)
		}
	}
	for _, e := range StaticETFs() {
		if e.Country == nil || *e.Country != "USA" {
			t.Errorf("%s: ETF country must default to USA", e.Symbol)
		}
	}
}
