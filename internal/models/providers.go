package models

// CoinMarket is one CoinGecko market listing in the provider's native shape.
type CoinMarket struct {
	Symbol       string    `json:"symbol"`
	Name         string    `json:"name"`
	CurrentPrice float64   `json:"current_price"`
	MarketCap    float64   `json:"market_cap"`
	Change24h    float64   `json:"price_change_percentage_24h"`
	Image        string    `json:"image"`
	Sparkline7d  []float64 `json:"-"`
}

// ScrapedListing is one row lifted from the companiesmarketcap HTML
// tables. Scraped data is best-effort only: rows that fail to parse are
// dropped and an empty result is a valid outcome.
type ScrapedListing struct {
	Symbol        string
	Name          string
	Price         float64
	MarketCap     float64
	ChangePercent float64
}
