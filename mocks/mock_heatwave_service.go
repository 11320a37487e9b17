package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"heatwatch/internal/domain"
	"heatwatch/internal/port"
	"heatwatch/internal/service"
)

// MockHeatwaveService is a mock implementation of service.HeatwaveService.
type MockHeatwaveService struct {
	mock.Mock
}

func (m *MockHeatwaveService) Create(ctx context.Context, input service.HeatwaveInput) (*domain.Heatwave, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Heatwave), args.Error(1)
}

func (m *MockHeatwaveService) Get(ctx context.Context, id uuid.UUID) (*domain.Heatwave, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Heatwave), args.Error(1)
}

func (m *MockHeatwaveService) List(ctx context.Context, filter port.HeatwaveFilter, offset, limit int) ([]domain.Heatwave, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Heatwave), args.Int(1), args.Error(2)
}

func (m *MockHeatwaveService) Active(ctx context.Context, at time.Time, offset, limit int) ([]domain.Heatwave, int, error) {
	args := m.Called(ctx, at, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Heatwave), args.Int(1), args.Error(2)
}

func (m *MockHeatwaveService) Update(ctx context.Context, id uuid.UUID, input service.HeatwaveInput) (*domain.Heatwave, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Heatwave), args.Error(1)
}

func (m *MockHeatwaveService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
