package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"heatwatch/internal/service"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

// WriteText writes the mock's third return value (if a string) to w.
func (m *MockReportService) WriteText(ctx context.Context, region string, w io.Writer) (string, error) {
	args := m.Called(ctx, region, w)
	if len(args) > 2 {
		if body, ok := args.Get(2).(string); ok {
			_, _ = io.WriteString(w, body)
		}
	}
	return args.String(0), args.Error(1)
}

func (m *MockReportService) PublishXLSX(ctx context.Context, region string) (*service.ReportLink, error) {
	args := m.Called(ctx, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReportLink), args.Error(1)
}
