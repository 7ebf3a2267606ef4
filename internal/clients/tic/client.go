// Package tic provides a client for the Treasury TIC document server
package tic

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bobmcallan/muskunits/internal/common"
)

const (
	DefaultBaseURL = "https://ticdata.treasury.gov/resource-center/data-chart-center/tic/Documents"
	DefaultTimeout = 60 * time.Second

	// Table 5 of the Securities (B) release: major foreign holders, recent era.
	recentDocument = "/slt_table5.txt"
	// Major foreign holders historical file, pre-2011 era.
	historicalDocument = "/mfhhis01.txt"
)

// Client implements the TICClient interface. The documents are plain
// tab-delimited text; this client only fetches them, the holdings
// service owns all parsing.
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

// NewClient creates a new TIC document client
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

func (c *Client) fetch(ctx context.Context, document string) (string, error) {
	reqURL := c.baseURL + document

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("url", reqURL).Msg("TIC document request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("TIC document %s returned status %d", document, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", document, err)
	}

	c.logger.Debug().Str("document", document).Int("bytes", len(body)).Msg("TIC document fetched")

	return string(body), nil
}

// GetRecentReport fetches the recent-era holders table.
func (c *Client) GetRecentReport(ctx context.Context) (string, error) {
	return c.fetch(ctx, recentDocument)
}

// GetHistoricalReport fetches the historical-era holders file.
func (c *Client) GetHistoricalReport(ctx context.Context) (string, error) {
	return c.fetch(ctx, historicalDocument)
}
