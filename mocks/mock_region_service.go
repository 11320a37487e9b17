package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"heatwatch/internal/domain"
	"heatwatch/internal/geo"
)

// MockRegionService is a mock implementation of service.RegionService.
type MockRegionService struct {
	mock.Mock
}

func (m *MockRegionService) Regions() []geo.Region {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]geo.Region)
}

func (m *MockRegionService) Nearest(p geo.Point) *geo.NearestMatch {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*geo.NearestMatch)
}

func (m *MockRegionService) Focus(ctx context.Context, locator geo.Locator) geo.Focus {
	args := m.Called(ctx, locator)
	return args.Get(0).(geo.Focus)
}

func (m *MockRegionService) Snapshot(ctx context.Context, name string) (*domain.RegionSnapshot, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegionSnapshot), args.Error(1)
}

func (m *MockRegionService) Invalidate() {
	m.Called()
}
