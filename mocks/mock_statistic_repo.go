package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"heatwatch/internal/domain"
)

// MockStatisticRepo is a mock implementation of port.StatisticRepository.
type MockStatisticRepo struct {
	mock.Mock
}

func (m *MockStatisticRepo) Create(ctx context.Context, stat *domain.Statistic) error {
	args := m.Called(ctx, stat)
	return args.Error(0)
}

func (m *MockStatisticRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Statistic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistic), args.Error(1)
}

func (m *MockStatisticRepo) GetByHeatwave(ctx context.Context, heatwaveID uuid.UUID) (*domain.Statistic, error) {
	args := m.Called(ctx, heatwaveID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistic), args.Error(1)
}

func (m *MockStatisticRepo) List(ctx context.Context, offset, limit int) ([]domain.Statistic, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Statistic), args.Int(1), args.Error(2)
}

func (m *MockStatisticRepo) Update(ctx context.Context, stat *domain.Statistic) error {
	args := m.Called(ctx, stat)
	return args.Error(0)
}

func (m *MockStatisticRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStatisticRepo) Summary(ctx context.Context) (*domain.StatisticsSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatisticsSummary), args.Error(1)
}
