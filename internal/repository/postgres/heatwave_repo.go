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

type heatwaveRepo struct {
	db *sqlx.DB
}

// NewHeatwaveRepo creates a new PostgreSQL-backed HeatwaveRepository.
func NewHeatwaveRepo(db *sqlx.DB) port.HeatwaveRepository {
	return &heatwaveRepo{db: db}
}

const heatwaveColumns = `h.id, h.zone_id, h.max_temp_c, h.intensity, h.humidity_pct,
	h.starts_at, h.ends_at, h.created_at, h.updated_at`

func (r *heatwaveRepo) Create(ctx context.Context, hw *domain.Heatwave) error {
	hw.ID = uuid.New()
	now := time.Now().UTC()
	hw.CreatedAt = now
	hw.UpdatedAt = now

	query := `INSERT INTO heatwaves (id, zone_id, max_temp_c, intensity, humidity_pct, starts_at, ends_at,
		created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		hw.ID, hw.ZoneID, hw.MaxTempC, hw.Intensity, hw.HumidityPct, hw.StartsAt, hw.EndsAt,
		hw.CreatedAt, hw.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrZoneNotFound
		}
		return fmt.Errorf("heatwaveRepo.Create: %w", err)
	}
	return nil
}

func (r *heatwaveRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Heatwave, error) {
	var hw domain.Heatwave
	err := r.db.GetContext(ctx, &hw, "SELECT "+heatwaveColumns+" FROM heatwaves h WHERE h.id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHeatwaveNotFound
		}
		return nil, fmt.Errorf("heatwaveRepo.GetByID: %w", err)
	}
	return &hw, nil
}

// buildHeatwaveWhere turns a filter into a WHERE clause and its arguments.
func buildHeatwaveWhere(filter port.HeatwaveFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}
	if filter.ZoneID != nil {
		args = append(args, *filter.ZoneID)
		conds = append(conds, fmt.Sprintf("h.zone_id = $%d", len(args)))
	}
	if filter.City != "" {
		args = append(args, filter.City)
		conds = append(conds, fmt.Sprintf("LOWER(z.city) = LOWER($%d)", len(args)))
	}
	if filter.ActiveAt != nil {
		args = append(args, *filter.ActiveAt)
		conds = append(conds, fmt.Sprintf("h.starts_at <= $%d AND h.ends_at >= $%d", len(args), len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *heatwaveRepo) List(ctx context.Context, filter port.HeatwaveFilter, offset, limit int) ([]domain.Heatwave, int, error) {
	where, args := buildHeatwaveWhere(filter)
	from := " FROM heatwaves h LEFT JOIN zones z ON z.id = h.zone_id"

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*)"+from+where, args...); err != nil {
		return nil, 0, fmt.Errorf("heatwaveRepo.List count: %w", err)
	}

	n := len(args)
	query := fmt.Sprintf("SELECT %s%s%s ORDER BY h.starts_at DESC LIMIT $%d OFFSET $%d",
		heatwaveColumns, from, where, n+1, n+2)
	var waves []domain.Heatwave
	if err := r.db.SelectContext(ctx, &waves, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("heatwaveRepo.List: %w", err)
	}
	return waves, total, nil
}

func (r *heatwaveRepo) Update(ctx context.Context, hw *domain.Heatwave) error {
	hw.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE heatwaves SET zone_id = $1, max_temp_c = $2, intensity = $3, humidity_pct = $4,
		 starts_at = $5, ends_at = $6, updated_at = $7 WHERE id = $8`,
		hw.ZoneID, hw.MaxTempC, hw.Intensity, hw.HumidityPct, hw.StartsAt, hw.EndsAt, hw.UpdatedAt, hw.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrZoneNotFound
		}
		return fmt.Errorf("heatwaveRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrHeatwaveNotFound
	}
	return nil
}

func (r *heatwaveRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM heatwaves WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("heatwaveRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrHeatwaveNotFound
	}
	return nil
}
