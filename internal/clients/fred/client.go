// Package fred provides a client for FRED CSV series downloads
package fred

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bobmcallan/muskunits/internal/common"
	"github.com/bobmcallan/muskunits/internal/models"
)

const (
	DefaultBaseURL = "https://fred.stlouisfed.org/graph"
	DefaultTimeout = 30 * time.Second
)

// Client implements the FredClient interface
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

// NewClient creates a new FRED client
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

// GetSeries downloads the fredgraph CSV for a series and parses it into
// month-granular points. The CSV has a header row and one
// "YYYY-MM-DD,value" row per observation; rows whose value fails numeric
// parse (FRED emits "." for missing observations) are skipped.
func (c *Client) GetSeries(ctx context.Context, seriesID string) ([]models.SeriesPoint, error) {
	params := url.Values{}
	params.Set("id", seriesID)
	reqURL := fmt.Sprintf("%s/fredgraph.csv?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("series", seriesID).Msg("FRED CSV request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("FRED returned status %d for %s: %s", resp.StatusCode, seriesID, string(body))
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1

	var points []models.SeriesPoint
	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV for %s: %w", seriesID, err)
		}
		if first {
			first = false // header row
			continue
		}
		if len(row) < 2 {
			continue
		}

		value, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			continue // "." marks a missing observation
		}

		date := row[0]
		if len(date) > 7 {
			date = date[:7] // YYYY-MM
		}
		points = append(points, models.SeriesPoint{Date: date, Value: value})
	}

	return points, nil
}
