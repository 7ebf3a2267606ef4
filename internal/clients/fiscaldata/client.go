// Package fiscaldata provides a client for the Treasury fiscal-service API
package fiscaldata

import (
	"context"
	"encoding/json"
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
	DefaultBaseURL = "https://api.fiscaldata.treasury.gov/services/api/fiscal_service"
	DefaultTimeout = 30 * time.Second

	debtToPennyPath = "/v2/accounting/od/debt_to_penny"
)

// flexFloat64 handles JSON values that may be either a number or a string.
// Fiscal-service amounts arrive as decimal strings.
type flexFloat64 float64

func (f *flexFloat64) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = flexFloat64(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" || s == "null" {
			*f = 0
			return nil
		}
		num, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat64(num)
		return nil
	}
	return fmt.Errorf("cannot unmarshal %s into float64", string(data))
}

// Client implements the FiscalDataClient interface
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

// NewClient creates a new fiscal-service client
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

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fiscal-service API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

type debtRecordResponse struct {
	RecordDate   string      `json:"record_date"`
	Total        flexFloat64 `json:"tot_pub_debt_out_amt"`
	HeldByPublic flexFloat64 `json:"debt_held_public_amt"`
	Intragov     flexFloat64 `json:"intragov_hold_amt"`
}

type debtListResponse struct {
	Data []debtRecordResponse `json:"data"`
}

func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("url", c.baseURL+path).Msg("fiscal-service API request")

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

// GetCurrentDebt returns the most recent debt-to-the-penny record.
func (c *Client) GetCurrentDebt(ctx context.Context) (*models.DebtRecord, error) {
	params := url.Values{}
	params.Set("sort", "-record_date")
	params.Set("page[size]", "1")

	var resp debtListResponse
	if err := c.get(ctx, debtToPennyPath, params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("debt_to_penny returned no records")
	}

	rec := resp.Data[0]
	return &models.DebtRecord{
		RecordDate:   rec.RecordDate,
		Total:        float64(rec.Total),
		HeldByPublic: float64(rec.HeldByPublic),
		Intragov:     float64(rec.Intragov),
	}, nil
}

// GetDebtHistory returns up to size records, newest first.
func (c *Client) GetDebtHistory(ctx context.Context, size int) ([]models.DebtRecord, error) {
	params := url.Values{}
	params.Set("sort", "-record_date")
	params.Set("page[size]", strconv.Itoa(size))
	params.Set("fields", "record_date,tot_pub_debt_out_amt")

	var resp debtListResponse
	if err := c.get(ctx, debtToPennyPath, params, &resp); err != nil {
		return nil, err
	}

	records := make([]models.DebtRecord, 0, len(resp.Data))
	for _, rec := range resp.Data {
		records = append(records, models.DebtRecord{
			RecordDate: rec.RecordDate,
			Total:      float64(rec.Total),
		})
	}
	return records, nil
}
