package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricelist/internal/domain"
	"pricelist/internal/quote"
	"pricelist/internal/service"
	"pricelist/mocks"
)

func TestQuoteService_Build(t *testing.T) {
	priceLists := new(mocks.MockPriceListService)
	builder := quote.NewBuilder(20, "₱").WithClock(func() time.Time {
		return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	})
	svc := service.NewQuoteService(priceLists, builder, nil)

	priceLists.On("Products", context.Background()).Return([]domain.ProductRecord{
		{Code: "SKU1", Description: "Widget", DealerPrice: "10"},
	}, nil)

	q, err := svc.Build(context.Background(), service.QuoteInput{
		Company:    "acme",
		Selections: []quote.Selection{{Code: "SKU1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ACME", q.Company)
	assert.Equal(t, "June 1, 2025", q.Date)
	require.Len(t, q.Lines, 1)
	assert.Equal(t, "Widget (1yr warranty)", q.Lines[0].Description)
}

func TestQuoteService_Build_NoPriceList(t *testing.T) {
	priceLists := new(mocks.MockPriceListService)
	svc := service.NewQuoteService(priceLists, quote.NewBuilder(20, "₱"), nil)

	priceLists.On("Products", context.Background()).Return(nil, domain.ErrPriceListNotFound)

	_, err := svc.Build(context.Background(), service.QuoteInput{
		Company:    "acme",
		Selections: []quote.Selection{{Code: "SKU1"}},
	})
	assert.ErrorIs(t, err, domain.ErrPriceListNotFound)
}

func TestQuoteService_Build_UnknownProduct(t *testing.T) {
	priceLists := new(mocks.MockPriceListService)
	svc := service.NewQuoteService(priceLists, quote.NewBuilder(20, "₱"), nil)

	priceLists.On("Products", context.Background()).Return([]domain.ProductRecord{}, nil)

	_, err := svc.Build(context.Background(), service.QuoteInput{
		Company:    "acme",
		Selections: []quote.Selection{{Code: "SKU1"}},
	})
	assert.ErrorIs(t, err, domain.ErrUnknownProduct)
}
