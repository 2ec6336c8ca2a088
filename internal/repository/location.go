package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/transfusion_coordinator/internal/models"
	"github.com/shenikar/transfusion_coordinator/internal/service"
)

type LocationRepository struct {
	db *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) service.LocationRepository {
	return &LocationRepository{
		db: db,
	}
}

// Upsert сохраняет позицию участника, перезаписывая предыдущую
func (r *LocationRepository) Upsert(ctx context.Context, location *models.ParticipantLocation) error {
	query := `
		INSERT INTO participant_locations (participant_id, user_type, latitude, longitude, accuracy, last_updated, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (participant_id) DO UPDATE SET
			user_type = EXCLUDED.user_type,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			accuracy = EXCLUDED.accuracy,
			last_updated = EXCLUDED.last_updated,
			is_active = EXCLUDED.is_active;
	`
	_, err := r.db.Exec(ctx, query,
		location.ParticipantID,
		location.UserType,
		location.Latitude,
		location.Longitude,
		location.Accuracy,
		location.LastUpdated,
		location.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert participant location: %w", err)
	}
	return nil
}

// Get возвращает позицию участника
func (r *LocationRepository) Get(ctx context.Context, participantID string) (*models.ParticipantLocation, error) {
	query := `
		SELECT participant_id, user_type, latitude, longitude, accuracy, last_updated, is_active
		FROM participant_locations
		WHERE participant_id = $1;
	`
	location := &models.ParticipantLocation{}
	err := r.db.QueryRow(ctx, query, participantID).Scan(
		&location.ParticipantID,
		&location.UserType,
		&location.Latitude,
		&location.Longitude,
		&location.Accuracy,
		&location.LastUpdated,
		&location.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFoundError("participant location", participantID)
		}
		return nil, fmt.Errorf("failed to get participant location: %w", err)
	}
	return location, nil
}

// MarkInactiveBefore снимает флаг активности с давно не обновлявшихся позиций
func (r *LocationRepository) MarkInactiveBefore(ctx context.Context, before time.Time) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE participant_locations SET is_active = FALSE
		WHERE is_active AND last_updated < $1;
	`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to mark stale locations inactive: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
