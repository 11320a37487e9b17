package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"heatwatch/internal/domain"
	"heatwatch/internal/port"
	"heatwatch/internal/service"
)

// MockRecommendationService is a mock implementation of service.RecommendationService.
type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) Create(ctx context.Context, input service.RecommendationInput) (*domain.Recommendation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recommendation), args.Error(1)
}

func (m *MockRecommendationService) Get(ctx context.Context, id uuid.UUID) (*domain.Recommendation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recommendation), args.Error(1)
}

func (m *MockRecommendationService) List(ctx context.Context, filter port.RecommendationFilter, offset, limit int) ([]domain.Recommendation, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Recommendation), args.Int(1), args.Error(2)
}

func (m *MockRecommendationService) Update(ctx context.Context, id uuid.UUID, input service.RecommendationInput) (*domain.Recommendation, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recommendation), args.Error(1)
}

func (m *MockRecommendationService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
