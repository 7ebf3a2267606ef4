// Package assets builds the ranked cross-class asset snapshot.
package assets

import (
	"strings"

	"github.com/bobmcallan/muskunits/internal/models"
)

// homeCountry is the default attributed to equity and ETF listings whose
// source omits a country.
const homeCountry = "USA"

// classCountry applies the per-class country rule: stocks and ETFs
// default to the home market, metals have no country at all.
func classCountry(class models.AssetClass, country string) *string {
	switch class {
	case models.AssetMetal, models.AssetCrypto:
		return nil
	}
	if country == "" {
		country = homeCountry
	}
	return &country
}

// NormalizeListings converts scraped rows to the uniform record shape.
// The scraper does not capture per-company countries, so the class
// default applies to every row.
func NormalizeListings(listings []models.ScrapedListing, class models.AssetClass) []models.AssetRecord {
	records := make([]models.AssetRecord, 0, len(listings))
	for _, l := range listings {
		records = append(records, models.AssetRecord{
			Symbol:        l.Symbol,
			Name:          l.Name,
			Price:         l.Price,
			MarketCap:     l.MarketCap,
			ChangePercent: l.ChangePercent,
			Class:         class,
			Country:       classCountry(class, ""),
		})
	}
	return records
}

// NormalizeCrypto converts CoinGecko listings. Symbols are upper-cased
// to match the equity convention and the logo reference is carried
// through; crypto has no country.
func NormalizeCrypto(markets []models.CoinMarket) []models.AssetRecord {
	records := make([]models.AssetRecord, 0, len(markets))
	for _, m := range markets {
		records = append(records, models.AssetRecord{
			Symbol:        strings.ToUpper(m.Symbol),
			Name:          m.Name,
			Price:         m.CurrentPrice,
			MarketCap:     m.MarketCap,
			ChangePercent: m.Change24h,
			Class:         models.AssetCrypto,
			LogoRef:       m.Image,
			Sparkline:     m.Sparkline7d,
		})
	}
	return records
}
