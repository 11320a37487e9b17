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

type zoneRepo struct {
	db *sqlx.DB
}

// NewZoneRepo creates a new PostgreSQL-backed ZoneRepository.
func NewZoneRepo(db *sqlx.DB) port.ZoneRepository {
	return &zoneRepo{db: db}
}

func (r *zoneRepo) Create(ctx context.Context, zone *domain.Zone) error {
	zone.ID = uuid.New()
	now := time.Now().UTC()
	zone.CreatedAt = now
	zone.UpdatedAt = now

	query := `INSERT INTO zones (id, city, street, number, latitude, longitude, radius_km, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		zone.ID, zone.City, zone.Street, zone.Number, zone.Latitude, zone.Longitude, zone.RadiusKM,
		zone.CreatedAt, zone.UpdatedAt)
	if err != nil {
		return fmt.Errorf("zoneRepo.Create: %w", err)
	}
	return nil
}

func (r *zoneRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Zone, error) {
	var zone domain.Zone
	err := r.db.GetContext(ctx, &zone,
		`SELECT id, city, street, number, latitude, longitude, radius_km, created_at, updated_at
		 FROM zones WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrZoneNotFound
		}
		return nil, fmt.Errorf("zoneRepo.GetByID: %w", err)
	}
	return &zone, nil
}

func (r *zoneRepo) List(ctx context.Context, offset, limit int) ([]domain.Zone, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM zones"); err != nil {
		return nil, 0, fmt.Errorf("zoneRepo.List count: %w", err)
	}

	var zones []domain.Zone
	err := r.db.SelectContext(ctx, &zones,
		`SELECT id, city, street, number, latitude, longitude, radius_km, created_at, updated_at
		 FROM zones ORDER BY city, street, number LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("zoneRepo.List: %w", err)
	}
	return zones, total, nil
}

func (r *zoneRepo) Update(ctx context.Context, zone *domain.Zone) error {
	zone.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE zones SET city = $1, street = $2, number = $3, latitude = $4, longitude = $5,
		 radius_km = $6, updated_at = $7 WHERE id = $8`,
		zone.City, zone.Street, zone.Number, zone.Latitude, zone.Longitude, zone.RadiusKM,
		zone.UpdatedAt, zone.ID)
	if err != nil {
		return fmt.Errorf("zoneRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrZoneNotFound
	}
	return nil
}

func (r *zoneRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM zones WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("zoneRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrZoneNotFound
	}
	return nil
}

func (r *zoneRepo) AddResident(ctx context.Context, zoneID, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO zone_residents (zone_id, user_id) VALUES ($1, $2)", zoneID, userID)
	if err != nil {
		switch {
		case isUniqueViolation(err, ""):
			return domain.ErrAlreadyResident
		case isForeignKeyViolation(err):
			return domain.ErrNotFound
		}
		return fmt.Errorf("zoneRepo.AddResident: %w", err)
	}
	return nil
}

func (r *zoneRepo) RemoveResident(ctx context.Context, zoneID, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM zone_residents WHERE zone_id = $1 AND user_id = $2", zoneID, userID)
	if err != nil {
		return fmt.Errorf("zoneRepo.RemoveResident: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotResident
	}
	return nil
}

func (r *zoneRepo) ListResidents(ctx context.Context, zoneID uuid.UUID) ([]domain.Resident, error) {
	residents := []domain.Resident{}
	err := r.db.SelectContext(ctx, &residents,
		`SELECT u.id, u.first_name, u.last_name, u.email
		 FROM zone_residents zr
		 INNER JOIN users u ON u.id = zr.user_id
		 WHERE zr.zone_id = $1 AND u.is_active
		 ORDER BY u.last_name, u.first_name`, zoneID)
	if err != nil {
		return nil, fmt.Errorf("zoneRepo.ListResidents: %w", err)
	}
	return residents, nil
}
