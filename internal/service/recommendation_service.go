package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"heatwatch/internal/domain"
	"heatwatch/internal/port"
)

// RecommendationInput is the DTO for creating or replacing a recommendation.
type RecommendationInput struct {
	ZoneID      uuid.UUID `json:"zone_id" binding:"required"`
	Title       string    `json:"title" binding:"required,max=200"`
	Description string    `json:"description" binding:"required"`
}

// RecommendationService manages health recommendations.
type RecommendationService interface {
	Create(ctx context.Context, input RecommendationInput) (*domain.Recommendation, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Recommendation, error)
	List(ctx context.Context, filter port.RecommendationFilter, offset, limit int) ([]domain.Recommendation, int, error)
	Update(ctx context.Context, id uuid.UUID, input RecommendationInput) (*domain.Recommendation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type recommendationService struct {
	recRepo port.RecommendationRepository
}

// NewRecommendationService creates a new RecommendationService implementation.
func NewRecommendationService(recRepo port.RecommendationRepository) RecommendationService {
	return &recommendationService{recRepo: recRepo}
}

func (s *recommendationService) Create(ctx context.Context, input RecommendationInput) (*domain.Recommendation, error) {
	rec := &domain.Recommendation{
		ZoneID:      input.ZoneID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
	}
	if err := s.recRepo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recommendationService) Get(ctx context.Context, id uuid.UUID) (*domain.Recommendation, error) {
	return s.recRepo.GetByID(ctx, id)
}

func (s *recommendationService) List(ctx context.Context, filter port.RecommendationFilter, offset, limit int) ([]domain.Recommendation, int, error) {
	return s.recRepo.List(ctx, filter, offset, limit)
}

func (s *recommendationService) Update(ctx context.Context, id uuid.UUID, input RecommendationInput) (*domain.Recommendation, error) {
	rec, err := s.recRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.ZoneID = input.ZoneID
	rec.Title = strings.TrimSpace(input.Title)
	rec.Description = strings.TrimSpace(input.Description)
	if err := s.recRepo.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recommendationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.recRepo.Delete(ctx, id)
}
