package quotes

import (
	"context"
	"errors"
	"testing"

	"github.com/bobmcallan/muskunits/internal/common"
	"github.com/bobmcallan/muskunits/internal/models"
)

type fakeQuoteClient struct {
	quotes map[string]*models.Quote
}

func (f *fakeQuoteClient) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	q, ok := f.quotes[symbol]
	if !ok {
		return nil, errors.New("symbol not found")
	}
	return q, nil
}

func TestGetQuotesIsolatesPerSymbolFailures(t *testing.T) {
	client := &fakeQuoteClient{quotes: map[string]*models.Quote{
		"TSLA": {Symbol: "TSLA", Price: 417.32, Currency: "USD"},
		"SPY":  {Symbol: "SPY", Price: 638.23, Currency: "USD"},
	}}
	svc := NewService(client, common.NewSilentLogger())

	out := svc.GetQuotes(context.Background(), []string{"TSLA", "BOGUS", "SPY"})

	if len(out) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(out))
	}
	if out["TSLA"].Price != 417.32 {
		t.Errorf("TSLA price = %v", out["TSLA"].Price)
	}
	if _, ok := out["BOGUS"]; ok {
		t.Error("failed symbol must be absent, not zero-valued")
	}
}

func TestGetQuotesEmptyInput(t *testing.T) {
	svc := NewService(&fakeQuoteClient{}, common.NewSilentLogger())
	out := svc.GetQuotes(context.Background(), nil)
	if len(out) != 0 {
		t.Errorf("expected empty map, got %v", out)
	}
}
