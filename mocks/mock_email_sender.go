package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"heatwatch/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendNotificationEmail(ctx context.Context, toEmail, toName string, n *domain.Notification) error {
	args := m.Called(ctx, toEmail, toName, n)
	return args.Error(0)
}
