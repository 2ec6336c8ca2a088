package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/transfusion_coordinator/internal/models"
	"github.com/shenikar/transfusion_coordinator/internal/service"
)

const eventColumns = `
	id,
	activation_time,
	lab_type,
	location,
	patient_mrn,
	original_location,
	location_history,
	assigned_runner_id,
	assigned_clinician_id,
	is_active,
	deactivation_time`

type EventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) service.EventRepository {
	return &EventRepository{
		db: db,
	}
}

// Create создает новую запись о событии в бд
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (id, activation_time, lab_type, location, patient_mrn, original_location,
			location_history, assigned_runner_id, assigned_clinician_id, is_active, deactivation_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	history := event.LocationHistory
	if history == nil {
		history = []models.LocationChange{}
	}
	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.ActivationTime,
		event.LabType,
		event.Location,
		event.PatientMRN,
		event.OriginalLocation,
		history,
		event.AssignedRunnerID,
		event.AssignedClinicianID,
		event.IsActive,
		event.DeactivationTime,
	)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetByID возвращает событие по его UUID независимо от активности
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	query := `SELECT` + eventColumns + `
		FROM events
		WHERE id = $1;
	`
	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFoundError("event", id)
		}
		return nil, fmt.Errorf("failed to get event by id: %w", err)
	}
	return event, nil
}

// ListActive возвращает активные события по времени активации
func (r *EventRepository) ListActive(ctx context.Context) ([]*models.Event, error) {
	query := `SELECT` + eventColumns + `
		FROM events
		WHERE is_active
		ORDER BY activation_time, id;
	`
	return r.list(ctx, query)
}

// ListAll возвращает все события, включая неактивные, по времени активации
func (r *EventRepository) ListAll(ctx context.Context) ([]*models.Event, error) {
	query := `SELECT` + eventColumns + `
		FROM events
		ORDER BY activation_time, id;
	`
	return r.list(ctx, query)
}

// assigneeColumns - колонка назначения для каждой роли
var assigneeColumns = map[string]string{
	models.RoleRunner:    "assigned_runner_id",
	models.RoleClinician: "assigned_clinician_id",
}

// Assign перезаписывает только колонку назначения для роли
func (r *EventRepository) Assign(ctx context.Context, id uuid.UUID, role, participantID string) error {
	column, ok := assigneeColumns[role]
	if !ok {
		return models.NewValidationError("role", "must be one of runner, clinician")
	}

	query := fmt.Sprintf(`UPDATE events SET %s = $2 WHERE id = $1;`, column)
	cmdTag, err := r.db.Exec(ctx, query, id, participantID)
	if err != nil {
		return fmt.Errorf("failed to assign participant: %w", err)
	}

	// RowsAffected() == 0 значит события с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return models.NewNotFoundError("event", id)
	}
	return nil
}

// Deactivate снимает флаг активности. Повторный вызов ставит новое время.
func (r *EventRepository) Deactivate(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE events SET
			is_active = FALSE,
			deactivation_time = $2
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("failed to deactivate event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.NewNotFoundError("event", id)
	}
	return nil
}

// UpdateLocation дописывает переход в историю и меняет локацию одним запросом.
// Правая часть SET видит старое значение location, поэтому from_location берется из той же строки.
func (r *EventRepository) UpdateLocation(ctx context.Context, id uuid.UUID, newLocation string, at time.Time) (*models.Event, error) {
	query := `
		UPDATE events SET
			location_history = location_history || jsonb_build_array(jsonb_build_object(
				'timestamp', $3::text,
				'from_location', location,
				'to_location', $2::text
			)),
			location = $2
		WHERE id = $1
		RETURNING` + eventColumns + `;
	`
	event, err := scanEvent(r.db.QueryRow(ctx, query, id, newLocation, at.UTC().Format(time.RFC3339Nano)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFoundError("event", id)
		}
		return nil, fmt.Errorf("failed to update event location: %w", err)
	}
	return event, nil
}

// Delete удаляет паки события и само событие в одной транзакции.
// Повторный вызов для уже удаленного события ничего не делает.
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM packs WHERE event_id = $1;`, id); err != nil {
			return fmt.Errorf("failed to delete packs of event: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM events WHERE id = $1;`, id); err != nil {
			return fmt.Errorf("failed to delete event: %w", err)
		}
		return nil
	})
}

func (r *EventRepository) list(ctx context.Context, query string) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return events, nil
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	event := &models.Event{}
	err := row.Scan(
		&event.ID,
		&event.ActivationTime,
		&event.LabType,
		&event.Location,
		&event.PatientMRN,
		&event.OriginalLocation,
		&event.LocationHistory,
		&event.AssignedRunnerID,
		&event.AssignedClinicianID,
		&event.IsActive,
		&event.DeactivationTime,
	)
	if err != nil {
		return nil, err
	}
	if event.LocationHistory == nil {
		event.LocationHistory = []models.LocationChange{}
	}
	return event, nil
}
