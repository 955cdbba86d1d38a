package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pricelist/internal/domain"
	"pricelist/internal/service"
)

// MockPriceListService is a mock implementation of service.PriceListService.
type MockPriceListService struct {
	mock.Mock
}

func (m *MockPriceListService) Upload(ctx context.Context, input service.PriceListUploadInput) (*domain.PriceListUpload, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceListUpload), args.Error(1)
}

func (m *MockPriceListService) Products(ctx context.Context) ([]domain.ProductRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductRecord), args.Error(1)
}

func (m *MockPriceListService) RawArtifact(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockPriceListService) Search(ctx context.Context, term string) ([]domain.ProductRecord, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductRecord), args.Error(1)
}
