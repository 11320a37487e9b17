package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"heatwatch/internal/domain"
	"heatwatch/internal/port"
)

// NotificationInput is the DTO an admin uses to notify a user directly.
type NotificationInput struct {
	UserID     uuid.UUID               `json:"user_id" binding:"required"`
	HeatwaveID uuid.UUID               `json:"heatwave_id" binding:"required"`
	Title      string                  `json:"title" binding:"required,max=255"`
	Type       domain.NotificationType `json:"type" binding:"required"`
}

// NotificationService exposes a user's notifications.
type NotificationService interface {
	Create(ctx context.Context, input NotificationInput) (*domain.Notification, error)
	ListMine(ctx context.Context, userID uuid.UUID, unreadOnly bool, offset, limit int) ([]domain.Notification, int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) (*domain.Notification, error)
}

type notificationService struct {
	notifRepo    port.NotificationRepository
	userRepo     port.UserRepository
	heatwaveRepo port.HeatwaveRepository
}

// NewNotificationService creates a new NotificationService implementation.
func NewNotificationService(
	notifRepo port.NotificationRepository,
	userRepo port.UserRepository,
	heatwaveRepo port.HeatwaveRepository,
) NotificationService {
	return &notificationService{notifRepo: notifRepo, userRepo: userRepo, heatwaveRepo: heatwaveRepo}
}

func (s *notificationService) Create(ctx context.Context, input NotificationInput) (*domain.Notification, error) {
	kind := domain.NotificationType(strings.ToLower(string(input.Type)))
	if !domain.ValidNotificationTypes[kind] {
		return nil, domain.ErrInvalidNotification
	}
	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}
	if _, err := s.heatwaveRepo.GetByID(ctx, input.HeatwaveID); err != nil {
		return nil, err
	}

	batch := []domain.Notification{{
		UserID:     input.UserID,
		HeatwaveID: input.HeatwaveID,
		Title:      strings.TrimSpace(input.Title),
		Type:       kind,
		Delivery:   domain.DeliveryPending,
	}}
	if err := s.notifRepo.CreateBatch(ctx, batch); err != nil {
		return nil, err
	}
	return &batch[0], nil
}

func (s *notificationService) ListMine(ctx context.Context, userID uuid.UUID, unreadOnly bool, offset, limit int) ([]domain.Notification, int, error) {
	return s.notifRepo.ListByUser(ctx, userID, unreadOnly, offset, limit)
}

// MarkRead only touches notifications owned by userID; anything else reads
// as not found.
func (s *notificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) (*domain.Notification, error) {
	if err := s.notifRepo.MarkRead(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.notifRepo.GetByID(ctx, id)
}
