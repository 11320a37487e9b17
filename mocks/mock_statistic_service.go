package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"heatwatch/internal/domain"
	"heatwatch/internal/service"
)

// MockStatisticService is a mock implementation of service.StatisticService.
type MockStatisticService struct {
	mock.Mock
}

func (m *MockStatisticService) Create(ctx context.Context, input service.StatisticInput) (*domain.Statistic, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistic), args.Error(1)
}

func (m *MockStatisticService) Get(ctx context.Context, id uuid.UUID) (*domain.Statistic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistic), args.Error(1)
}

func (m *MockStatisticService) GetByHeatwave(ctx context.Context, heatwaveID uuid.UUID) (*domain.Statistic, error) {
	args := m.Called(ctx, heatwaveID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistic), args.Error(1)
}

func (m *MockStatisticService) List(ctx context.Context, offset, limit int) ([]domain.Statistic, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Statistic), args.Int(1), args.Error(2)
}

func (m *MockStatisticService) Update(ctx context.Context, id uuid.UUID, input service.StatisticInput) (*domain.Statistic, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistic), args.Error(1)
}

func (m *MockStatisticService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStatisticService) Summary(ctx context.Context) (*domain.StatisticsSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatisticsSummary), args.Error(1)
}

// Export writes the mock's optional string argument to w before returning.
func (m *MockStatisticService) Export(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	if len(args) > 1 {
		if body, ok := args.Get(1).(string); ok {
			_, _ = io.WriteString(w, body)
		}
	}
	return args.Error(0)
}
