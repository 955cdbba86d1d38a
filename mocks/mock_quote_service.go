package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pricelist/internal/quote"
	"pricelist/internal/service"
)

// MockQuoteService is a mock implementation of service.QuoteService.
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Build(ctx context.Context, input service.QuoteInput) (*quote.Quote, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quote.Quote), args.Error(1)
}
