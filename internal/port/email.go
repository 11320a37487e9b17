package port

import (
	"context"

	"heatwatch/internal/domain"
)

// EmailSender delivers notification emails.
type EmailSender interface {
	SendNotificationEmail(ctx context.Context, toEmail, toName string, n *domain.Notification) error
}
