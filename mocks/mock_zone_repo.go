package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"heatwatch/internal/domain"
)

// MockZoneRepo is a mock implementation of port.ZoneRepository.
type MockZoneRepo struct {
	mock.Mock
}

func (m *MockZoneRepo) Create(ctx context.Context, zone *domain.Zone) error {
	args := m.Called(ctx, zone)
	return args.Error(0)
}

func (m *MockZoneRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Zone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Zone), args.Error(1)
}

func (m *MockZoneRepo) List(ctx context.Context, offset, limit int) ([]domain.Zone, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Zone), args.Int(1), args.Error(2)
}

func (m *MockZoneRepo) Update(ctx context.Context, zone *domain.Zone) error {
	args := m.Called(ctx, zone)
	return args.Error(0)
}

func (m *MockZoneRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockZoneRepo) AddResident(ctx context.Context, zoneID, userID uuid.UUID) error {
	args := m.Called(ctx, zoneID, userID)
	return args.Error(0)
}

func (m *MockZoneRepo) RemoveResident(ctx context.Context, zoneID, userID uuid.UUID) error {
	args := m.Called(ctx, zoneID, userID)
	return args.Error(0)
}

func (m *MockZoneRepo) ListResidents(ctx context.Context, zoneID uuid.UUID) ([]domain.Resident, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resident), args.Error(1)
}
