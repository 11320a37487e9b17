package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"heatwatch/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	CountByRole(ctx context.Context) (map[domain.UserRole]int, error)
}

// ZoneRepository defines the contract for zone persistence, including the
// zone-resident membership.
type ZoneRepository interface {
	Create(ctx context.Context, zone *domain.Zone) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Zone, error)
	List(ctx context.Context, offset, limit int) ([]domain.Zone, int, error)
	Update(ctx context.Context, zone *domain.Zone) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddResident(ctx context.Context, zoneID, userID uuid.UUID) error
	RemoveResident(ctx context.Context, zoneID, userID uuid.UUID) error
	ListResidents(ctx context.Context, zoneID uuid.UUID) ([]domain.Resident, error)
}

// HeatwaveFilter narrows heatwave listings.
type HeatwaveFilter struct {
	ZoneID *uuid.UUID
	City   string
	// ActiveAt keeps only heatwaves whose period covers the instant.
	ActiveAt *time.Time
}

// HeatwaveRepository defines the contract for heatwave persistence.
type HeatwaveRepository interface {
	Create(ctx context.Context, hw *domain.Heatwave) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Heatwave, error)
	List(ctx context.Context, filter HeatwaveFilter, offset, limit int) ([]domain.Heatwave, int, error)
	Update(ctx context.Context, hw *domain.Heatwave) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StatisticRepository defines the contract for statistic persistence. Each
// heatwave has at most one statistic.
type StatisticRepository interface {
	Create(ctx context.Context, stat *domain.Statistic) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Statistic, error)
	GetByHeatwave(ctx context.Context, heatwaveID uuid.UUID) (*domain.Statistic, error)
	List(ctx context.Context, offset, limit int) ([]domain.Statistic, int, error)
	Update(ctx context.Context, stat *domain.Statistic) error
	Delete(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context) (*domain.StatisticsSummary, error)
}

// RecommendationFilter narrows recommendation listings.
type RecommendationFilter struct {
	ZoneID *uuid.UUID
	City   string
}

// RecommendationRepository defines the contract for recommendation persistence.
type RecommendationRepository interface {
	Create(ctx context.Context, rec *domain.Recommendation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recommendation, error)
	List(ctx context.Context, filter RecommendationFilter, offset, limit int) ([]domain.Recommendation, int, error)
	Update(ctx context.Context, rec *domain.Recommendation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// NotificationRepository defines the contract for notification persistence
// and the delivery queue.
type NotificationRepository interface {
	CreateBatch(ctx context.Context, notifications []domain.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, offset, limit int) ([]domain.Notification, int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	// ClaimPending returns up to limit notifications awaiting delivery with
	// fewer than maxAttempts tries, joined with the recipient's address.
	ClaimPending(ctx context.Context, limit, maxAttempts int) ([]domain.Notification, error)
	UpdateDelivery(ctx context.Context, id uuid.UUID, status domain.DeliveryStatus, attempts int) error
}
