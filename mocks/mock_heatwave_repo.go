package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"heatwatch/internal/domain"
	"heatwatch/internal/port"
)

// MockHeatwaveRepo is a mock implementation of port.HeatwaveRepository.
type MockHeatwaveRepo struct {
	mock.Mock
}

func (m *MockHeatwaveRepo) Create(ctx context.Context, hw *domain.Heatwave) error {
	args := m.Called(ctx, hw)
	return args.Error(0)
}

func (m *MockHeatwaveRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Heatwave, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Heatwave), args.Error(1)
}

func (m *MockHeatwaveRepo) List(ctx context.Context, filter port.HeatwaveFilter, offset, limit int) ([]domain.Heatwave, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Heatwave), args.Int(1), args.Error(2)
}

func (m *MockHeatwaveRepo) Update(ctx context.Context, hw *domain.Heatwave) error {
	args := m.Called(ctx, hw)
	return args.Error(0)
}

func (m *MockHeatwaveRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
