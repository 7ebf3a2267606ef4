package marketcap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rankingPage = `<html><body>
<table class="default-table">
<tbody>
<tr>
  <td>1</td>
  <td><div class="company-name">NVIDIA</div><div class="company-code">NVDA</div></td>
  <td>$4.626 T</td>
  <td>$189.52</td>
  <td><span class="percentage-green">1.24%</span></td>
</tr>
<tr>
  <td>2</td>
  <td><div class="company-name">Apple</div><div class="company-code">AAPL</div></td>
  <td>$3.902 T</td>
  <td>$262.41</td>
  <td><span class="percentage-red">0.83%</span></td>
</tr>
<tr>
  <td>3</td>
  <td><div class="company-name">Broken Row</div><div class="company-code">BRKN</div></td>
  <td>n/a</td>
</tr>
</tbody>
</table>
</body></html>`

func TestScrapeCompanies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		w.Write([]byte(rankingPage))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	listings, err := client.ScrapeCompanies(context.Background(), 0)
	require.NoError(t, err)

	// The row without a parseable market cap is dropped.
	require.Len(t, listings, 2)

	assert.Equal(t, "NVDA", listings[0].Symbol)
	assert.Equal(t, "NVIDIA", listings[0].Name)
	assert.InDelta(t, 4.626e12, listings[0].MarketCap, 1e6)
	assert.InDelta(t, 189.52, listings[0].Price, 1e-9)
	assert.InDelta(t, 1.24, listings[0].ChangePercent, 1e-9)

	// Red styling flips the sign.
	assert.InDelta(t, -0.83, listings[1].ChangePercent, 1e-9)
}

func TestScrapeCompaniesLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rankingPage))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	listings, err := client.ScrapeCompanies(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "NVDA", listings[0].Symbol)
}

func TestScrapeCompaniesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.ScrapeCompanies(context.Background(), 0)
	require.Error(t, err)
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"$3.45 T", 3.45e12, true},
		{"$123.45 B", 123.45e9, true},
		{"$950 M", 950e6, true},
		{"$1,234.56", 1234.56, true},
		{"$262.41", 262.41, true},
		{"n/a", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseMoney(tt.in)
		assert.Equal(t, tt.ok, ok, "parseMoney(%q)", tt.in)
		if tt.ok {
			assert.InDelta(t, tt.want, got, tt.want*1e-9+1e-9, "parseMoney(%q)", tt.in)
		}
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"2.14%", 2.14, true},
		{"+0.5%", 0.5, true},
		{"0%", 0, true},
		{"N/A", 0, false},
	}

	for _, tt := range tests {
		got, ok := parsePercent(tt.in)
		assert.Equal(t, tt.ok, ok, "parsePercent(%q)", tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "parsePercent(%q)", tt.in)
	}
}
