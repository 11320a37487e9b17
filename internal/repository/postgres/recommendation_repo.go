package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"heatwatch/internal/domain"
	"heatwatch/internal/port"
)

type recommendationRepo struct {
	db *sqlx.DB
}

// NewRecommendationRepo creates a new PostgreSQL-backed RecommendationRepository.
func NewRecommendationRepo(db *sqlx.DB) port.RecommendationRepository {
	return &recommendationRepo{db: db}
}

const recommendationColumns = "r.id, r.zone_id, r.title, r.description, r.created_at, r.updated_at"

func (r *recommendationRepo) Create(ctx context.Context, rec *domain.Recommendation) error {
	rec.ID = uuid.New()
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO recommendations (id, zone_id, title, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.ZoneID, rec.Title, rec.Description, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrZoneNotFound
		}
		return fmt.Errorf("recommendationRepo.Create: %w", err)
	}
	return nil
}

func (r *recommendationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recommendation, error) {
	var rec domain.Recommendation
	err := r.db.GetContext(ctx, &rec,
		"SELECT "+recommendationColumns+" FROM recommendations r WHERE r.id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecommendationMissing
		}
		return nil, fmt.Errorf("recommendationRepo.GetByID: %w", err)
	}
	return &rec, nil
}

func (r *recommendationRepo) List(ctx context.Context, filter port.RecommendationFilter, offset, limit int) ([]domain.Recommendation, int, error) {
	var conds []string
	var args []interface{}
	if filter.ZoneID != nil {
		args = append(args, *filter.ZoneID)
		conds = append(conds, fmt.Sprintf("r.zone_id = $%d", len(args)))
	}
	if filter.City != "" {
		args = append(args, filter.City)
		conds = append(conds, fmt.Sprintf("LOWER(z.city) = LOWER($%d)", len(args)))
	}
	from := " FROM recommendations r INNER JOIN zones z ON z.id = r.zone_id"
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*)"+from+where, args...); err != nil {
		return nil, 0, fmt.Errorf("recommendationRepo.List count: %w", err)
	}

	n := len(args)
	query := fmt.Sprintf("SELECT %s%s%s ORDER BY r.created_at DESC LIMIT $%d OFFSET $%d",
		recommendationColumns, from, where, n+1, n+2)
	var recs []domain.Recommendation
	if err := r.db.SelectContext(ctx, &recs, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("recommendationRepo.List: %w", err)
	}
	return recs, total, nil
}

func (r *recommendationRepo) Update(ctx context.Context, rec *domain.Recommendation) error {
	rec.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE recommendations SET zone_id = $1, title = $2, description = $3, updated_at = $4 WHERE id = $5`,
		rec.ZoneID, rec.Title, rec.Description, rec.UpdatedAt, rec.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrZoneNotFound
		}
		return fmt.Errorf("recommendationRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRecommendationMissing
	}
	return nil
}

func (r *recommendationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM recommendations WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("recommendationRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRecommendationMissing
	}
	return nil
}
