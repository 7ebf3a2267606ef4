// Package coingecko provides a client for the CoinGecko markets API
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/bobmcallan/muskunits/internal/common"
	"github.com/bobmcallan/muskunits/internal/models"
)

const (
	DefaultBaseURL   = "https://api.coingecko.com/api/v3"
	DefaultTimeout   = 20 * time.Second
	DefaultRateLimit = 2 // requests per second, the free tier throttles hard
	pageSize         = 50
)

// Client implements the CryptoClient interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
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

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new CoinGecko client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("CoinGecko API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET request
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("url", c.baseURL+path).Msg("CoinGecko API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// coinMarketResponse is the API response shape for one market listing.
type coinMarketResponse struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"`
	MarketCap    float64 `json:"market_cap"`
	Change24h    float64 `json:"price_change_percentage_24h"`
	Image        string  `json:"image"`
	Sparkline    *struct {
		Price []float64 `json:"price"`
	} `json:"sparkline_in_7d"`
}

// GetMarkets fetches up to limit listings ordered by market cap descending.
// Pages are requested sequentially under the rate limiter so a bulk fetch
// never bursts past the provider's cap. A page smaller than requested ends
// the loop; the caller decides whether a short total means throttling.
func (c *Client) GetMarkets(ctx context.Context, limit int) ([]models.CoinMarket, error) {
	var markets []models.CoinMarket

	for page := 1; len(markets) < limit; page++ {
		params := url.Values{}
		params.Set("vs_currency", "usd")
		params.Set("order", "market_cap_desc")
		params.Set("per_page", strconv.Itoa(pageSize))
		params.Set("page", strconv.Itoa(page))
		params.Set("sparkline", "true")

		var batch []coinMarketResponse
		if err := c.get(ctx, "/coins/markets", params, &batch); err != nil {
			if len(markets) > 0 {
				// Later pages failing is a partial result, not a dead source
				c.logger.Warn().Int("page", page).Err(err).Msg("CoinGecko page fetch failed, returning partial result")
				break
			}
			return nil, err
		}

		for _, coin := range batch {
			m := models.CoinMarket{
				Symbol:       coin.Symbol,
				Name:         coin.Name,
				CurrentPrice: coin.CurrentPrice,
				MarketCap:    coin.MarketCap,
				Change24h:    coin.Change24h,
				Image:        coin.Image,
			}
			if coin.Sparkline != nil {
				m.Sparkline7d = coin.Sparkline.Price
			}
			markets = append(markets, m)
		}

		if len(batch) < pageSize {
			break
		}
	}

	if len(markets) > limit {
		markets = markets[:limit]
	}
	return markets, nil
}
