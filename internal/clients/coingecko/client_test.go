package coingecko

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marketEntry(symbol string, cap float64) string {
	return fmt.Sprintf(`{
		"symbol": %q,
		"name": %q,
		"current_price": 1.0,
		"market_cap": %f,
		"price_change_percentage_24h": 2.5,
		"image": "https://img.example/%s.png",
		"sparkline_in_7d": {"price": [1.0, 1.1, 1.05]}
	}`, symbol, symbol, cap, symbol)
}

func TestGetMarkets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/markets", r.URL.Path)
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currency"))
		assert.Equal(t, "true", r.URL.Query().Get("sparkline"))

		// A page shorter than requested ends the pagination loop.
		w.Write([]byte("[" + marketEntry("btc", 2.4e12) + "," + marketEntry("eth", 4.5e11) + "]"))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithRateLimit(1000))
	markets, err := client.GetMarkets(context.Background(), 50)
	require.NoError(t, err)

	require.Len(t, markets, 2)
	assert.Equal(t, "btc", markets[0].Symbol)
	assert.InDelta(t, 2.4e12, markets[0].MarketCap, 1e3)
	assert.InDelta(t, 2.5, markets[0].Change24h, 1e-9)
	assert.NotEmpty(t, markets[0].Image)
	assert.Len(t, markets[0].Sparkline7d, 3)
}

func TestGetMarketsFirstPageError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithRateLimit(1000))
	_, err := client.GetMarkets(context.Background(), 50)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
}

func TestGetMarketsPartialResult(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls > 1 {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
			return
		}

		// Full first page so the client asks for a second one.
		entries := ""
		for i := 0; i < 50; i++ {
			if i > 0 {
				entries += ","
			}
			entries += marketEntry(fmt.Sprintf("coin%d", i), 1e9)
		}
		w.Write([]byte("[" + entries + "]"))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithRateLimit(1000))
	markets, err := client.GetMarkets(context.Background(), 60)
	require.NoError(t, err)
	assert.Len(t, markets, 50)
}
