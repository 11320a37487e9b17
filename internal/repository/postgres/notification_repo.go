package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"heatwatch/internal/domain"
	"heatwatch/internal/port"
)

type notificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepo creates a new PostgreSQL-backed NotificationRepository.
func NewNotificationRepo(db *sqlx.DB) port.NotificationRepository {
	return &notificationRepo{db: db}
}

const notificationColumns = `n.id, n.user_id, n.heatwave_id, n.title, n.type, n.sent_at, n.is_read,
	n.delivery_status, n.delivery_attempts, n.created_at, n.updated_at`

func (r *notificationRepo) CreateBatch(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("notificationRepo.CreateBatch begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	for i := range notifications {
		n := &notifications[i]
		n.ID = uuid.New()
		n.CreatedAt = now
		n.UpdatedAt = now
		if n.SentAt.IsZero() {
			n.SentAt = now
		}
		if n.Delivery == "" {
			n.Delivery = domain.DeliveryPending
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO notifications (id, user_id, heatwave_id, title, type, sent_at, is_read,
			 delivery_status, delivery_attempts, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			n.ID, n.UserID, n.HeatwaveID, n.Title, n.Type, n.SentAt, n.Read,
			n.Delivery, n.DeliveryTries, n.CreatedAt, n.UpdatedAt)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("notificationRepo.CreateBatch: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("notificationRepo.CreateBatch commit: %w", err)
	}
	return nil
}

func (r *notificationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	var n domain.Notification
	err := r.db.GetContext(ctx, &n, "SELECT "+notificationColumns+" FROM notifications n WHERE n.id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("notificationRepo.GetByID: %w", err)
	}
	return &n, nil
}

func (r *notificationRepo) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, offset, limit int) ([]domain.Notification, int, error) {
	where := " WHERE n.user_id = $1"
	if unreadOnly {
		where += " AND NOT n.is_read"
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM notifications n"+where, userID); err != nil {
		return nil, 0, fmt.Errorf("notificationRepo.ListByUser count: %w", err)
	}

	var notifications []domain.Notification
	err := r.db.SelectContext(ctx, &notifications,
		"SELECT "+notificationColumns+" FROM notifications n"+where+" ORDER BY n.sent_at DESC LIMIT $2 OFFSET $3",
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("notificationRepo.ListByUser: %w", err)
	}
	return notifications, total, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = TRUE, updated_at = NOW() WHERE id = $1 AND user_id = $2",
		id, userID)
	if err != nil {
		return fmt.Errorf("notificationRepo.MarkRead: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

// ClaimPending locks the oldest pending rows with SKIP LOCKED so several
// dispatchers can share the queue, and bumps their attempt counter before
// returning them.
func (r *notificationRepo) ClaimPending(ctx context.Context, limit, maxAttempts int) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.db.SelectContext(ctx, &notifications, `
		WITH claimed AS (
			SELECT id FROM notifications
			WHERE delivery_status = 'pending' AND delivery_attempts < $2
			ORDER BY created_at
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		UPDATE notifications n
		SET delivery_attempts = n.delivery_attempts + 1, updated_at = NOW()
		FROM claimed, users u
		WHERE n.id = claimed.id AND u.id = n.user_id
		RETURNING `+notificationColumns+`,
			u.email AS recipient_email,
			TRIM(u.first_name || ' ' || u.last_name) AS recipient_name`,
		limit, maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("notificationRepo.ClaimPending: %w", err)
	}
	return notifications, nil
}

func (r *notificationRepo) UpdateDelivery(ctx context.Context, id uuid.UUID, status domain.DeliveryStatus, attempts int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET delivery_status = $1, delivery_attempts = $2, updated_at = NOW() WHERE id = $3`,
		status, attempts, id)
	if err != nil {
		return fmt.Errorf("notificationRepo.UpdateDelivery: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
