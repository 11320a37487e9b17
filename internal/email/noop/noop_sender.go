package noop

import (
	"context"
	"log/slog"

	"heatwatch/internal/domain"
	"heatwatch/internal/email"
	"heatwatch/internal/port"
)

type noopSender struct {
	frontendURL string
	logger      *slog.Logger
}

// NewNoopSender creates a no-op EmailSender that only logs what would be sent.
func NewNoopSender(frontendURL string, logger *slog.Logger) port.EmailSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &noopSender{frontendURL: frontendURL, logger: logger}
}

func (s *noopSender) SendNotificationEmail(_ context.Context, toEmail, toName string, n *domain.Notification) error {
	msg := email.NotificationMessage(n, toName, s.frontendURL)
	s.logger.Info("noop email",
		slog.String("to", toEmail),
		slog.String("name", toName),
		slog.String("subject", msg.Subject),
		slog.String("notification_id", n.ID.String()))
	return nil
}
