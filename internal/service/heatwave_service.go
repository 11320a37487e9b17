package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"heatwatch/internal/domain"
	"heatwatch/internal/port"
)

// HeatwaveInput is the DTO for creating or replacing a heatwave.
type HeatwaveInput struct {
	ZoneID      *uuid.UUID `json:"zone_id"`
	MaxTempC    float64    `json:"max_temp_c" binding:"required"`
	Intensity   float64    `json:"intensity" binding:"gte=0"`
	HumidityPct float64    `json:"humidity_pct" binding:"gte=0,lte=100"`
	StartsAt    time.Time  `json:"starts_at" binding:"required"`
	EndsAt      time.Time  `json:"ends_at" binding:"required"`
}

// HeatwaveService manages heatwave episodes.
type HeatwaveService interface {
	Create(ctx context.Context, input HeatwaveInput) (*domain.Heatwave, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Heatwave, error)
	List(ctx context.Context, filter port.HeatwaveFilter, offset, limit int) ([]domain.Heatwave, int, error)
	Active(ctx context.Context, at time.Time, offset, limit int) ([]domain.Heatwave, int, error)
	Update(ctx context.Context, id uuid.UUID, input HeatwaveInput) (*domain.Heatwave, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type heatwaveService struct {
	heatwaveRepo port.HeatwaveRepository
	zoneRepo     port.ZoneRepository
	notifRepo    port.NotificationRepository
}

// NewHeatwaveService creates a new HeatwaveService implementation.
func NewHeatwaveService(
	heatwaveRepo port.HeatwaveRepository,
	zoneRepo port.ZoneRepository,
	notifRepo port.NotificationRepository,
) HeatwaveService {
	return &heatwaveService{heatwaveRepo: heatwaveRepo, zoneRepo: zoneRepo, notifRepo: notifRepo}
}

// Create records the heatwave and queues a notification for every resident
// of its zone. A failure to queue is logged; the heatwave is kept.
func (s *heatwaveService) Create(ctx context.Context, input HeatwaveInput) (*domain.Heatwave, error) {
	if input.EndsAt.Before(input.StartsAt) {
		return nil, domain.ErrInvalidPeriod
	}
	var zone *domain.Zone
	if input.ZoneID != nil {
		z, err := s.zoneRepo.GetByID(ctx, *input.ZoneID)
		if err != nil {
			return nil, err
		}
		zone = z
	}

	hw := &domain.Heatwave{}
	applyHeatwaveInput(hw, input)
	if err := s.heatwaveRepo.Create(ctx, hw); err != nil {
		return nil, err
	}

	if zone != nil {
		if err := s.notifyResidents(ctx, hw, zone); err != nil {
			slog.Error("queueing heatwave notifications failed",
				slog.String("heatwave_id", hw.ID.String()), slog.String("error", err.Error()))
		}
	}
	return hw, nil
}

func (s *heatwaveService) notifyResidents(ctx context.Context, hw *domain.Heatwave, zone *domain.Zone) error {
	residents, err := s.zoneRepo.ListResidents(ctx, zone.ID)
	if err != nil {
		return fmt.Errorf("listing residents: %w", err)
	}
	if len(residents) == 0 {
		return nil
	}

	title := HeatwaveAlertTitle(hw, zone)
	kind := NotificationTypeFor(domain.AlertLevelFor(hw.MaxTempC))
	batch := make([]domain.Notification, 0, len(residents))
	for _, r := range residents {
		batch = append(batch, domain.Notification{
			UserID:     r.ID,
			HeatwaveID: hw.ID,
			Title:      title,
			Type:       kind,
			Delivery:   domain.DeliveryPending,
		})
	}
	if err := s.notifRepo.CreateBatch(ctx, batch); err != nil {
		return fmt.Errorf("creating notifications: %w", err)
	}
	slog.Info("heatwave notifications queued",
		slog.String("heatwave_id", hw.ID.String()), slog.Int("count", len(batch)))
	return nil
}

// HeatwaveAlertTitle is the notification title for a heatwave in zone.
func HeatwaveAlertTitle(hw *domain.Heatwave, zone *domain.Zone) string {
	return fmt.Sprintf("Vague de chaleur à %s : %.1f°C du %s au %s",
		zone.City, hw.MaxTempC, hw.StartsAt.Format("02/01"), hw.EndsAt.Format("02/01"))
}

// NotificationTypeFor maps an alert level to a notification severity.
func NotificationTypeFor(level domain.AlertLevel) domain.NotificationType {
	switch level {
	case domain.AlertLevelDanger:
		return domain.NotificationCritical
	case domain.AlertLevelWarning:
		return domain.NotificationWarning
	default:
		return domain.NotificationInfo
	}
}

func (s *heatwaveService) Get(ctx context.Context, id uuid.UUID) (*domain.Heatwave, error) {
	return s.heatwaveRepo.GetByID(ctx, id)
}

func (s *heatwaveService) List(ctx context.Context, filter port.HeatwaveFilter, offset, limit int) ([]domain.Heatwave, int, error) {
	return s.heatwaveRepo.List(ctx, filter, offset, limit)
}

func (s *heatwaveService) Active(ctx context.Context, at time.Time, offset, limit int) ([]domain.Heatwave, int, error) {
	return s.heatwaveRepo.List(ctx, port.HeatwaveFilter{ActiveAt: &at}, offset, limit)
}

func (s *heatwaveService) Update(ctx context.Context, id uuid.UUID, input HeatwaveInput) (*domain.Heatwave, error) {
	if input.EndsAt.Before(input.StartsAt) {
		return nil, domain.ErrInvalidPeriod
	}
	hw, err := s.heatwaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.ZoneID != nil {
		if _, err := s.zoneRepo.GetByID(ctx, *input.ZoneID); err != nil {
			return nil, err
		}
	}
	applyHeatwaveInput(hw, input)
	if err := s.heatwaveRepo.Update(ctx, hw); err != nil {
		return nil, err
	}
	return hw, nil
}

func (s *heatwaveService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.heatwaveRepo.Delete(ctx, id)
}

func applyHeatwaveInput(hw *domain.Heatwave, input HeatwaveInput) {
	hw.ZoneID = input.ZoneID
	hw.MaxTempC = input.MaxTempC
	hw.Intensity = input.Intensity
	hw.HumidityPct = input.HumidityPct
	hw.StartsAt = input.StartsAt.UTC()
	hw.EndsAt = input.EndsAt.UTC()
}
