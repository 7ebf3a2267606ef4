package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/GC=F", r.URL.Path)
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Write([]byte(`{"chart":{"result":[{"meta":{
			"symbol":"GC=F",
			"regularMarketPrice":5076.5,
			"chartPreviousClose":5050.0,
			"currency":"USD"
		}}],"error":null}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	quote, err := client.GetQuote(context.Background(), "GC=F")
	require.NoError(t, err)

	assert.Equal(t, "GC=F", quote.Symbol)
	assert.InDelta(t, 5076.5, quote.Price, 1e-9)
	assert.InDelta(t, 26.5, quote.Change, 1e-9)
	assert.InDelta(t, 26.5/5050.0*100, quote.ChangePercent, 1e-9)
	assert.Equal(t, "USD", quote.Currency)
}

func TestGetQuoteZeroPreviousClose(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[{"meta":{
			"symbol":"^TNX",
			"regularMarketPrice":4.21,
			"chartPreviousClose":0,
			"currency":"USD"
		}}],"error":null}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	quote, err := client.GetQuote(context.Background(), "^TNX")
	require.NoError(t, err)

	// No previous close, no change numbers.
	assert.Zero(t, quote.Change)
	assert.Zero(t, quote.ChangePercent)
}

func TestGetQuoteChartError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.GetQuote(context.Background(), "BOGUS")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	assert.Contains(t, apiErr.Message, "delisted")
}

func TestGetQuoteHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.GetQuote(context.Background(), "GC=F")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
}
