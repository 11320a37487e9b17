package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"heatwatch/internal/domain"
	"heatwatch/internal/service"
)

// MockZoneService is a mock implementation of service.ZoneService.
type MockZoneService struct {
	mock.Mock
}

func (m *MockZoneService) Create(ctx context.Context, input service.ZoneInput) (*domain.Zone, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Zone), args.Error(1)
}

func (m *MockZoneService) Get(ctx context.Context, id uuid.UUID) (*domain.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Zone), args.Error(1)
}

func (m *MockZoneService) List(ctx context.Context, offset, limit int) ([]domain.Zone, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Zone), args.Int(1), args.Error(2)
}

func (m *MockZoneService) Update(ctx context.Context, id uuid.UUID, input service.ZoneInput) (*domain.Zone, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Zone), args.Error(1)
}

func (m *MockZoneService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockZoneService) AddResident(ctx context.Context, zoneID, userID uuid.UUID) (*domain.Zone, error) {
	args := m.Called(ctx, zoneID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Zone), args.Error(1)
}

func (m *MockZoneService) RemoveResident(ctx context.Context, zoneID, userID uuid.UUID) (*domain.Zone, error) {
	args := m.Called(ctx, zoneID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Zone), args.Error(1)
}
