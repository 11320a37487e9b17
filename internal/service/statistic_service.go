package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"heatwatch/internal/csvexport"
	"heatwatch/internal/domain"
	"heatwatch/internal/port"
)

const exportBatchSize = 500

// StatisticInput is the DTO for creating or replacing a statistic.
type StatisticInput struct {
	HeatwaveID uuid.UUID `json:"heatwave_id" binding:"required"`
	MeanTempC  float64   `json:"mean_temp_c"`
	WaveCount  int       `json:"wave_count" binding:"gte=0"`
}

// StatisticService manages per-heatwave statistics.
type StatisticService interface {
	Create(ctx context.Context, input StatisticInput) (*domain.Statistic, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Statistic, error)
	GetByHeatwave(ctx context.Context, heatwaveID uuid.UUID) (*domain.Statistic, error)
	List(ctx context.Context, offset, limit int) ([]domain.Statistic, int, error)
	Update(ctx context.Context, id uuid.UUID, input StatisticInput) (*domain.Statistic, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context) (*domain.StatisticsSummary, error)
	// Export writes every statistic as CSV to w.
	Export(ctx context.Context, w io.Writer) error
}

type statisticService struct {
	statRepo     port.StatisticRepository
	heatwaveRepo port.HeatwaveRepository
}

// NewStatisticService creates a new StatisticService implementation.
func NewStatisticService(statRepo port.StatisticRepository, heatwaveRepo port.HeatwaveRepository) StatisticService {
	return &statisticService{statRepo: statRepo, heatwaveRepo: heatwaveRepo}
}

func (s *statisticService) Create(ctx context.Context, input StatisticInput) (*domain.Statistic, error) {
	if _, err := s.heatwaveRepo.GetByID(ctx, input.HeatwaveID); err != nil {
		return nil, err
	}
	stat := &domain.Statistic{
		HeatwaveID: input.HeatwaveID,
		MeanTempC:  input.MeanTempC,
		WaveCount:  input.WaveCount,
	}
	if err := s.statRepo.Create(ctx, stat); err != nil {
		return nil, err
	}
	// Reload so the heatwave columns are filled in.
	return s.statRepo.GetByID(ctx, stat.ID)
}

func (s *statisticService) Get(ctx context.Context, id uuid.UUID) (*domain.Statistic, error) {
	return s.statRepo.GetByID(ctx, id)
}

func (s *statisticService) GetByHeatwave(ctx context.Context, heatwaveID uuid.UUID) (*domain.Statistic, error) {
	return s.statRepo.GetByHeatwave(ctx, heatwaveID)
}

func (s *statisticService) List(ctx context.Context, offset, limit int) ([]domain.Statistic, int, error) {
	return s.statRepo.List(ctx, offset, limit)
}

func (s *statisticService) Update(ctx context.Context, id uuid.UUID, input StatisticInput) (*domain.Statistic, error) {
	stat, err := s.statRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stat.HeatwaveID != input.HeatwaveID {
		if _, err := s.heatwaveRepo.GetByID(ctx, input.HeatwaveID); err != nil {
			return nil, err
		}
	}
	stat.HeatwaveID = input.HeatwaveID
	stat.MeanTempC = input.MeanTempC
	stat.WaveCount = input.WaveCount
	if err := s.statRepo.Update(ctx, stat); err != nil {
		return nil, err
	}
	return s.statRepo.GetByID(ctx, id)
}

func (s *statisticService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.statRepo.Delete(ctx, id)
}

func (s *statisticService) Summary(ctx context.Context) (*domain.StatisticsSummary, error) {
	return s.statRepo.Summary(ctx)
}

func (s *statisticService) Export(ctx context.Context, w io.Writer) error {
	cw := csvexport.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return fmt.Errorf("statistic.Export header: %w", err)
	}
	written := 0
	for offset := 0; ; offset += exportBatchSize {
		batch, total, err := s.statRepo.List(ctx, offset, exportBatchSize)
		if err != nil {
			return fmt.Errorf("statistic.Export: %w", err)
		}
		if err := cw.WriteStatistics(batch); err != nil {
			return fmt.Errorf("statistic.Export rows: %w", err)
		}
		cw.Flush()
		written += len(batch)
		if len(batch) < exportBatchSize || written >= total {
			break
		}
	}
	return cw.Error()
}
