package fred

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSeries(t *testing.T) {
	csvBody := "DATE,GFDEGDQ188S\n" +
		"2024-10-01,120.81\n" +
		"2025-01-01,.\n" +
		"2025-04-01,122.02\n"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fredgraph.csv", r.URL.Path)
		assert.Equal(t, "GFDEGDQ188S", r.URL.Query().Get("id"))
		w.Write([]byte(csvBody))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	points, err := client.GetSeries(context.Background(), "GFDEGDQ188S")
	require.NoError(t, err)

	// The "." row marks a missing observation and is skipped; dates are
	// truncated to month granularity.
	require.Len(t, points, 2)
	assert.Equal(t, "2024-10", points[0].Date)
	assert.InDelta(t, 120.81, points[0].Value, 1e-9)
	assert.Equal(t, "2025-04", points[1].Date)
	assert.InDelta(t, 122.02, points[1].Value, 1e-9)
}

func TestGetSeriesHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "series not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.GetSeries(context.Background(), "BOGUS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGetSeriesHeaderOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("DATE,GDP\n"))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	points, err := client.GetSeries(context.Background(), "GDP")
	require.NoError(t, err)
	assert.Empty(t, points)
}
