package assets

import "github.com/bobmcallan/muskunits/internal/models"

// staticListing is one row of the bundled last-known-good snapshot,
// used when a live source is down or throttled.
type staticListing struct {
	Symbol    string
	Name      string
	MarketCap float64
	Price     float64
	Change    float64
	Country   string // blank means the class default applies
}

// Snapshot of companiesmarketcap.com rankings, Feb 2026.
var staticStocks = []staticListing{
	{Symbol: "NVDA", Name: "NVIDIA", MarketCap: 4626e9, Price: 190.04, Change: 2.50},
	{Symbol: "AAPL", Name: "Apple", MarketCap: 4036e9, Price: 274.62, Change: -1.17},
	{Symbol: "GOOG", Name: "Alphabet (Google)", MarketCap: 3924e9, Price: 324.40, Change: 0.40},
	{Symbol: "MSFT", Name: "Microsoft", MarketCap: 3074e9, Price: 413.60, Change: 3.11},
	{Symbol: "AMZN", Name: "Amazon", MarketCap: 2240e9, Price: 208.72, Change: -0.76},
	{Symbol: "TSM", Name: "TSMC", MarketCap: 1843e9, Price: 355.41, Change: 1.88},
	{Symbol: "META", Name: "Meta Platforms", MarketCap: 1713e9, Price: 677.22, Change: 2.38},
	{Symbol: "2222.SR", Name: "Saudi Aramco", MarketCap: 1667e9, Price: 6.89, Change: 0.70, Country: "Saudi Arabia"},
	{Symbol: "AVGO", Name: "Broadcom", MarketCap: 1630e9, Price: 343.94, Change: 3.44},
	{Symbol: "TSLA", Name: "Tesla", MarketCap: 1565e9, Price: 417.32, Change: 1.51},
	{Symbol: "BRK-B", Name: "Berkshire Hathaway", MarketCap: 1074e9, Price: 498.08, Change: -1.97},
	{Symbol: "WMT", Name: "Walmart", MarketCap: 1028e9, Price: 129.02, Change: -1.65},
	{Symbol: "LLY", Name: "Eli Lilly", MarketCap: 936.5e9, Price: 1045, Change: -1.28},
	{Symbol: "JPM", Name: "JPMorgan Chase", MarketCap: 876.84e9, Price: 322.10, Change: -0.09},
	{Symbol: "005930.KS", Name: "Samsung", MarketCap: 758.8e9, Price: 113.49, Change: -0.36, Country: "South Korea"},
	{Symbol: "TCEHY", Name: "Tencent", MarketCap: 647.72e9, Price: 71.80, Change: 0.42, Country: "China"},
	{Symbol: "XOM", Name: "Exxon Mobil", MarketCap: 637.67e9, Price: 151.21, Change: 1.45},
	{Symbol: "V", Name: "Visa", MarketCap: 627.73e9, Price: 325.58, Change: -1.81},
	{Symbol: "JNJ", Name: "Johnson & Johnson", MarketCap: 574.95e9, Price: 238.64, Change: -0.56},
	{Symbol: "ASML", Name: "ASML", MarketCap: 554.85e9, Price: 1429, Change: 1.17, Country: "Netherlands"},
	{Symbol: "MA", Name: "Mastercard", MarketCap: 478.28e9, Price: 535.33, Change: -2.44},
	{Symbol: "ORCL", Name: "Oracle", MarketCap: 450.05e9, Price: 156.59, Change: 9.64},
	{Symbol: "COST", Name: "Costco", MarketCap: 442.88e9, Price: 997.59, Change: -0.36},
	{Symbol: "MU", Name: "Micron Technology", MarketCap: 431.63e9, Price: 383.50, Change: -2.84},
	{Symbol: "BAC", Name: "Bank of America", MarketCap: 411.93e9, Price: 56.41, Change: -0.21},
	{Symbol: "ABBV", Name: "AbbVie", MarketCap: 394.58e9, Price: 223.26, Change: -0.08},
	{Symbol: "BABA", Name: "Alibaba", MarketCap: 389.13e9, Price: 163.00, Change: 0.30, Country: "China"},
	{Symbol: "HD", Name: "Home Depot", MarketCap: 379.28e9, Price: 381.00, Change: -1.08},
	{Symbol: "PG", Name: "Procter & Gamble", MarketCap: 367.63e9, Price: 157.33, Change: -1.16},
	{Symbol: "CVX", Name: "Chevron", MarketCap: 365.08e9, Price: 182.60, Change: 0.96},
	{Symbol: "AMD", Name: "AMD", MarketCap: 352.16e9, Price: 216.00, Change: 3.63},
	{Symbol: "CAT", Name: "Caterpillar", MarketCap: 347.66e9, Price: 742.12, Change: 2.19},
	{Symbol: "NFLX", Name: "Netflix", MarketCap: 345.58e9, Price: 81.47, Change: -0.89},
	{Symbol: "CSCO", Name: "Cisco", MarketCap: 342.87e9, Price: 86.78, Change: 2.31},
	{Symbol: "PLTR", Name: "Palantir", MarketCap: 340.61e9, Price: 142.91, Change: 5.16},
	{Symbol: "KO", Name: "Coca-Cola", MarketCap: 335.55e9, Price: 77.97, Change: -1.34},
	{Symbol: "GE", Name: "General Electric", MarketCap: 334.10e9, Price: 316.74, Change: -1.33},
	{Symbol: "TM", Name: "Toyota", MarketCap: 317.40e9, Price: 242.39, Change: -0.75, Country: "Japan"},
	{Symbol: "WFC", Name: "Wells Fargo", MarketCap: 296.98e9, Price: 94.61, Change: 0.68},
	{Symbol: "MRK", Name: "Merck", MarketCap: 293.86e9, Price: 117.65, Change: -3.51},
}

var staticETFs = []staticListing{
	{Symbol: "SPY", Name: "SPDR S&P 500 ETF", MarketCap: 864.87e9, Price: 638.23, Change: 0.47},
	{Symbol: "IVV", Name: "iShares Core S&P 500", MarketCap: 765.36e9, Price: 697.09, Change: 0.48},
	{Symbol: "VOO", Name: "Vanguard S&P 500", MarketCap: 710.72e9, Price: 693.95, Change: 0.48},
	{Symbol: "VTI", Name: "Vanguard Total Stock", MarketCap: 588.91e9, Price: 342.64, Change: 0.49},
	{Symbol: "QQQ", Name: "Invesco QQQ", MarketCap: 531.27e9, Price: 2125, Change: 0.41},
	{Symbol: "AGG", Name: "iShares Core Bond", MarketCap: 306.51e9, Price: 1752, Change: 0.38},
	{Symbol: "VUG", Name: "Vanguard Growth", MarketCap: 213.60e9, Price: 68.37, Change: 1.48},
	{Symbol: "BND", Name: "Vanguard Total Bond", MarketCap: 200.09e9, Price: 473.39, Change: 1.02},
}

var staticMetals = []staticListing{
	{Symbol: "GOLD", Name: "Gold", MarketCap: 35295e9, Price: 5076, Change: -0.06},
	{Symbol: "SILVER", Name: "Silver", MarketCap: 4595e9, Price: 81.63, Change: -0.73},
}

func normalizeStatic(listings []staticListing, class models.AssetClass) []models.AssetRecord {
	records := make([]models.AssetRecord, 0, len(listings))
	for _, l := range listings {
		record := models.AssetRecord{
			Symbol:        l.Symbol,
			Name:          l.Name,
			Price:         l.Price,
			MarketCap:     l.MarketCap,
			ChangePercent: l.Change,
			Class:         class,
		}
		record.Country = classCountry(class, l.Country)
		records = append(records, record)
	}
	return records
}

// StaticStocks returns the bundled equity snapshot.
func StaticStocks() []models.AssetRecord {
	return normalizeStatic(staticStocks, models.AssetStock)
}

// StaticETFs returns the bundled ETF snapshot.
func StaticETFs() []models.AssetRecord {
	return normalizeStatic(staticETFs, models.AssetETF)
}

// StaticMetals returns the bundled metals snapshot.
func StaticMetals() []models.AssetRecord {
	return normalizeStatic(staticMetals, models.AssetMetal)
}
