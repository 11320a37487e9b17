package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"heatwatch/internal/domain"
	"heatwatch/internal/service"
)

// MockDashboardService is a mock implementation of service.DashboardService.
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Admin(ctx context.Context, user *domain.User) (*service.AdminDashboard, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AdminDashboard), args.Error(1)
}
