package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"heatwatch/internal/domain"
	"heatwatch/internal/port"
)

// MockRecommendationRepo is a mock implementation of port.RecommendationRepository.
type MockRecommendationRepo struct {
	mock.Mock
}

func (m *MockRecommendationRepo) Create(ctx context.Context, rec *domain.Recommendation) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecommendationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recommendation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepo) List(ctx context.Context, filter port.RecommendationFilter, offset, limit int) ([]domain.Recommendation, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Recommendation), args.Int(1), args.Error(2)
}

func (m *MockRecommendationRepo) Update(ctx context.Context, rec *domain.Recommendation) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecommendationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
