// Package quotes fetches ticker-strip prices.
package quotes

import (
	"context"
	"sync"

	"github.com/bobmcallan/muskunits/internal/common"
	"github.com/bobmcallan/muskunits/internal/interfaces"
	"github.com/bobmcallan/muskunits/internal/models"
)

// Service fans one GetQuotes call out to per-symbol fetches. A failed
// symbol is simply absent from the result; the strip renders whatever
// came back.
type Service struct {
	client interfaces.QuoteClient
	logger *common.Logger
}

// NewService creates a quote service.
func NewService(client interfaces.QuoteClient, logger *common.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// GetQuotes fetches all symbols concurrently. The provider client
// applies its own rate cap, so fan-out here never bursts past it.
func (s *Service) GetQuotes(ctx context.Context, symbols []string) map[string]models.Quote {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	out := make(map[string]models.Quote, len(symbols))

	for _, symbol := range symbols {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			quote, err := s.client.GetQuote(ctx, symbol)
			if err != nil {
				s.logger.Warn().Err(err).Str("symbol", symbol).Msg("quote fetch failed")
				return
			}
			mu.Lock()
			out[symbol] = *quote
			mu.Unlock()
		}(symbol)
	}
	wg.Wait()

	return out
}
