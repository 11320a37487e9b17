package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"heatwatch/internal/domain"
	"heatwatch/internal/port"
)

// ZoneInput is the DTO for creating or replacing a zone.
type ZoneInput struct {
	City      string  `json:"city" binding:"required"`
	Street    string  `json:"street" binding:"required"`
	Number    int     `json:"number" binding:"gte=0"`
	Latitude  float64 `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" binding:"gte=-180,lte=180"`
	RadiusKM  float64 `json:"radius_km" binding:"required,gt=0"`
}

// ZoneService manages monitored zones and their residents.
type ZoneService interface {
	Create(ctx context.Context, input ZoneInput) (*domain.Zone, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Zone, error)
	List(ctx context.Context, offset, limit int) ([]domain.Zone, int, error)
	Update(ctx context.Context, id uuid.UUID, input ZoneInput) (*domain.Zone, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddResident(ctx context.Context, zoneID, userID uuid.UUID) (*domain.Zone, error)
	RemoveResident(ctx context.Context, zoneID, userID uuid.UUID) (*domain.Zone, error)
}

type zoneService struct {
	zoneRepo port.ZoneRepository
	userRepo port.UserRepository
}

// NewZoneService creates a new ZoneService implementation.
func NewZoneService(zoneRepo port.ZoneRepository, userRepo port.UserRepository) ZoneService {
	return &zoneService{zoneRepo: zoneRepo, userRepo: userRepo}
}

func (s *zoneService) Create(ctx context.Context, input ZoneInput) (*domain.Zone, error) {
	zone := &domain.Zone{}
	applyZoneInput(zone, input)
	if err := s.zoneRepo.Create(ctx, zone); err != nil {
		return nil, err
	}
	zone.Residents = []domain.Resident{}
	return zone, nil
}

// Get returns the zone with its residents.
func (s *zoneService) Get(ctx context.Context, id uuid.UUID) (*domain.Zone, error) {
	zone, err := s.zoneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	residents, err := s.zoneRepo.ListResidents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("zone.Get: %w", err)
	}
	zone.Residents = residents
	return zone, nil
}

func (s *zoneService) List(ctx context.Context, offset, limit int) ([]domain.Zone, int, error) {
	return s.zoneRepo.List(ctx, offset, limit)
}

func (s *zoneService) Update(ctx context.Context, id uuid.UUID, input ZoneInput) (*domain.Zone, error) {
	zone, err := s.zoneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyZoneInput(zone, input)
	if err := s.zoneRepo.Update(ctx, zone); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *zoneService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.zoneRepo.Delete(ctx, id)
}

func (s *zoneService) AddResident(ctx context.Context, zoneID, userID uuid.UUID) (*domain.Zone, error) {
	if _, err := s.zoneRepo.GetByID(ctx, zoneID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.zoneRepo.AddResident(ctx, zoneID, userID); err != nil {
		return nil, err
	}
	return s.Get(ctx, zoneID)
}

func (s *zoneService) RemoveResident(ctx context.Context, zoneID, userID uuid.UUID) (*domain.Zone, error) {
	if err := s.zoneRepo.RemoveResident(ctx, zoneID, userID); err != nil {
		return nil, err
	}
	return s.Get(ctx, zoneID)
}

func applyZoneInput(zone *domain.Zone, input ZoneInput) {
	zone.City = strings.TrimSpace(input.City)
	zone.Street = strings.TrimSpace(input.Street)
	zone.Number = input.Number
	zone.Latitude = input.Latitude
	zone.Longitude = input.Longitude
	zone.RadiusKM = input.RadiusKM
}
