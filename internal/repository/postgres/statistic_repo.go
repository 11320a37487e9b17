package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"heatwatch/internal/domain"
	"heatwatch/internal/port"
)

type statisticRepo struct {
	db *sqlx.DB
}

// NewStatisticRepo creates a new PostgreSQL-backed StatisticRepository.
func NewStatisticRepo(db *sqlx.DB) port.StatisticRepository {
	return &statisticRepo{db: db}
}

const statisticSelect = `SELECT s.id, s.heatwave_id, s.mean_temp_c, s.wave_count, s.created_at, s.updated_at,
	h.max_temp_c AS heatwave_max_temp_c, h.starts_at AS heatwave_starts_at, h.ends_at AS heatwave_ends_at
FROM statistics s
INNER JOIN heatwaves h ON h.id = s.heatwave_id`

func (r *statisticRepo) Create(ctx context.Context, stat *domain.Statistic) error {
	stat.ID = uuid.New()
	now := time.Now().UTC()
	stat.CreatedAt = now
	stat.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO statistics (id, heatwave_id, mean_temp_c, wave_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		stat.ID, stat.HeatwaveID, stat.MeanTempC, stat.WaveCount, stat.CreatedAt, stat.UpdatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err, ""):
			return domain.ErrDuplicateStatistic
		case isForeignKeyViolation(err):
			return domain.ErrHeatwaveNotFound
		}
		return fmt.Errorf("statisticRepo.Create: %w", err)
	}
	return nil
}

func (r *statisticRepo) get(ctx context.Context, op, where string, arg interface{}) (*domain.Statistic, error) {
	var stat domain.Statistic
	if err := r.db.GetContext(ctx, &stat, statisticSelect+" WHERE "+where, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStatisticNotFound
		}
		return nil, fmt.Errorf("statisticRepo.%s: %w", op, err)
	}
	return &stat, nil
}

func (r *statisticRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Statistic, error) {
	return r.get(ctx, "GetByID", "s.id = $1", id)
}

func (r *statisticRepo) GetByHeatwave(ctx context.Context, heatwaveID uuid.UUID) (*domain.Statistic, error) {
	return r.get(ctx, "GetByHeatwave", "s.heatwave_id = $1", heatwaveID)
}

func (r *statisticRepo) List(ctx context.Context, offset, limit int) ([]domain.Statistic, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM statistics"); err != nil {
		return nil, 0, fmt.Errorf("statisticRepo.List count: %w", err)
	}

	var stats []domain.Statistic
	err := r.db.SelectContext(ctx, &stats,
		statisticSelect+" ORDER BY h.starts_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("statisticRepo.List: %w", err)
	}
	return stats, total, nil
}

func (r *statisticRepo) Update(ctx context.Context, stat *domain.Statistic) error {
	stat.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE statistics SET mean_temp_c = $1, wave_count = $2, updated_at = $3 WHERE id = $4`,
		stat.MeanTempC, stat.WaveCount, stat.UpdatedAt, stat.ID)
	if err != nil {
		return fmt.Errorf("statisticRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrStatisticNotFound
	}
	return nil
}

func (r *statisticRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM statistics WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("statisticRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrStatisticNotFound
	}
	return nil
}

const statisticsSummaryQuery = `SELECT
	COUNT(*) AS total_statistics,
	COALESCE(SUM(wave_count), 0) AS total_waves_logged,
	COALESCE(AVG(mean_temp_c), 0) AS global_mean_temp_c
FROM statistics`

func (r *statisticRepo) Summary(ctx context.Context) (*domain.StatisticsSummary, error) {
	var summary domain.StatisticsSummary
	if err := r.db.GetContext(ctx, &summary, statisticsSummaryQuery); err != nil {
		return nil, fmt.Errorf("statisticRepo.Summary: %w", err)
	}
	summary.GlobalMeanTempC = math.Round(summary.GlobalMeanTempC*100) / 100
	summary.HasStatistics = summary.TotalStatistics > 0
	return &summary, nil
}
