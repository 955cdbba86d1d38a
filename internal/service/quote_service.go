package service

import (
	"context"
	"log"

	"pricelist/internal/metrics"
	"pricelist/internal/quote"
)

// QuoteInput is the DTO for quote requests.
type QuoteInput struct {
	Company    string
	Selections []quote.Selection
}

// QuoteService defines the quote contract.
type QuoteService interface {
	Build(ctx context.Context, input QuoteInput) (*quote.Quote, error)
}

type quoteService struct {
	priceLists PriceListService
	builder    *quote.Builder
	metrics    *metrics.Metrics
}

// NewQuoteService creates a new QuoteService implementation.
func NewQuoteService(priceLists PriceListService, builder *quote.Builder, m *metrics.Metrics) QuoteService {
	return &quoteService{
		priceLists: priceLists,
		builder:    builder,
		metrics:    m,
	}
}

func (s *quoteService) Build(ctx context.Context, input QuoteInput) (*quote.Quote, error) {
	products, err := s.priceLists.Products(ctx)
	if err != nil {
		return nil, err
	}

	q, err := s.builder.Build(input.Company, input.Selections, products)
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveQuote()
	log.Printf("quoteService.Build: %d lines for %s", len(q.Lines), q.Company)
	return q, nil
}
