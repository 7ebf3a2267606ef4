// Package marketcap scrapes listing tables from companiesmarketcap.com
package marketcap

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/bobmcallan/muskunits/internal/common"
	"github.com/bobmcallan/muskunits/internal/models"
)

const (
	DefaultBaseURL = "https://companiesmarketcap.com"
	DefaultTimeout = 30 * time.Second

	companiesPath = "/"
	metalsPath    = "/metals/largest-metals-by-market-cap/"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

// Client implements the MarketCapClient interface. The site has no API,
// so everything here is scraped from the ranking tables and treated as
// best-effort: rows that do not parse are skipped.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new scraper client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) document(ctx context.Context, path string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug().Str("path", path).Msg("marketcap scrape request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("marketcap page %s returned status %d", path, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page %s: %w", path, err)
	}
	return doc, nil
}

// parseListings walks the ranking table rows. The table layout is
// rank | name+code | market cap | price | change, with money values
// suffixed T/B/M and percentages suffixed %.
func (c *Client) parseListings(doc *goquery.Document, limit int) []models.ScrapedListing {
	var listings []models.ScrapedListing

	doc.Find("table.default-table tbody tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		if limit > 0 && len(listings) >= limit {
			return false
		}

		name := strings.TrimSpace(row.Find("div.company-name").First().Text())
		symbol := strings.TrimSpace(row.Find("div.company-code").First().Text())
		if name == "" {
			return true
		}

		var marketCap, price, change float64
		var capOK bool
		row.Find("td").Each(func(j int, cell *goquery.Selection) {
			text := strings.TrimSpace(cell.Text())
			switch {
			case !capOK && strings.HasPrefix(text, "$"):
				if v, ok := parseMoney(text); ok {
					marketCap = v
					capOK = true
				}
			case capOK && price == 0 && strings.HasPrefix(text, "$"):
				if v, ok := parseMoney(text); ok {
					price = v
				}
			case change == 0 && strings.HasSuffix(text, "%"):
				if v, ok := parsePercent(text); ok {
					change = v
					if cell.Find("span.percentage-red").Length() > 0 {
						change = -change
					}
				}
			}
		})

		if !capOK {
			return true
		}

		listings = append(listings, models.ScrapedListing{
			Symbol:        symbol,
			Name:          name,
			Price:         price,
			MarketCap:     marketCap,
			ChangePercent: change,
		})
		return true
	})

	return listings
}

// ScrapeCompanies scrapes the main ranking page, returning up to limit rows.
func (c *Client) ScrapeCompanies(ctx context.Context, limit int) ([]models.ScrapedListing, error) {
	doc, err := c.document(ctx, companiesPath)
	if err != nil {
		return nil, err
	}

	listings := c.parseListings(doc, limit)
	c.logger.Debug().Int("count", len(listings)).Msg("scraped company listings")
	return listings, nil
}

// ScrapeMetals scrapes the precious-metals ranking page.
func (c *Client) ScrapeMetals(ctx context.Context) ([]models.ScrapedListing, error) {
	doc, err := c.document(ctx, metalsPath)
	if err != nil {
		return nil, err
	}

	listings := c.parseListings(doc, 0)
	c.logger.Debug().Int("count", len(listings)).Msg("scraped metal listings")
	return listings, nil
}

// parseMoney converts "$3.45 T" style values to dollars.
func parseMoney(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
	s = strings.ReplaceAll(s, ",", "")

	mult := 1.0
	switch {
	case strings.HasSuffix(s, "T"):
		mult = 1e12
		s = strings.TrimSpace(strings.TrimSuffix(s, "T"))
	case strings.HasSuffix(s, "B"):
		mult = 1e9
		s = strings.TrimSpace(strings.TrimSuffix(s, "B"))
	case strings.HasSuffix(s, "M"):
		mult = 1e6
		s = strings.TrimSpace(strings.TrimSuffix(s, "M"))
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v * mult, true
}

// parsePercent converts "2.14%" to its numeric value. Sign is carried
// by the cell's styling, not the text, so the caller applies it.
func parsePercent(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	s = strings.TrimPrefix(s, "+")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
